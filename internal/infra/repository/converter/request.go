package converter

import (
	"encoding/json"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"
)

func RequestToCreateParams(r *request.ServiceRequest) (sqlc.CreateServiceRequestParams, error) {
	s := r.Snapshot()
	payload, err := json.Marshal(payloadOrEmpty(s.Payload))
	if err != nil {
		return sqlc.CreateServiceRequestParams{}, errs.Wrap(err, "failed to encode payload")
	}
	result, err := encodeResult(s.Result)
	if err != nil {
		return sqlc.CreateServiceRequestParams{}, err
	}
	return sqlc.CreateServiceRequestParams{
		ID:              s.ID,
		UserID:          s.UserID,
		Category:        s.Category.String(),
		Payload:         payload,
		InventoryPool:   pgconv.OptionalString(s.InventoryPool),
		FeeKobo:         s.Fee.Kobo(),
		Paid:            s.Paid,
		Status:          s.Status.String(),
		AssignedAgentID: pgconv.UUIDPtrToPgtype(s.AssignedAgentID),
		AllocatedCodeID: pgconv.UUIDPtrToPgtype(s.AllocatedCodeID),
		Result:          result,
		FailureReason:   pgconv.OptionalString(s.FailureReason),
		RetryCount:      pgconv.IntToInt32(s.RetryCount),
		MaxRetries:      pgconv.IntToInt32(s.MaxRetries),
		RefundHalted:    s.RefundHalted,
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt),
		AssignedAt:      pgconv.TimePtrToPgtype(s.AssignedAt),
		CompletedAt:     pgconv.TimePtrToPgtype(s.CompletedAt),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt),
	}, nil
}

// RequestToTransitionParams carries every mutable column guarded on the expected status.
func RequestToTransitionParams(r *request.ServiceRequest, expected request.Status) (sqlc.TransitionServiceRequestParams, error) {
	s := r.Snapshot()
	result, err := encodeResult(s.Result)
	if err != nil {
		return sqlc.TransitionServiceRequestParams{}, err
	}
	return sqlc.TransitionServiceRequestParams{
		Status:          s.Status.String(),
		Paid:            s.Paid,
		AssignedAgentID: pgconv.UUIDPtrToPgtype(s.AssignedAgentID),
		AllocatedCodeID: pgconv.UUIDPtrToPgtype(s.AllocatedCodeID),
		Result:          result,
		FailureReason:   pgconv.OptionalString(s.FailureReason),
		RetryCount:      pgconv.IntToInt32(s.RetryCount),
		RefundHalted:    s.RefundHalted,
		AssignedAt:      pgconv.TimePtrToPgtype(s.AssignedAt),
		CompletedAt:     pgconv.TimePtrToPgtype(s.CompletedAt),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt),
		ID:              s.ID,
		ExpectedStatus:  expected.String(),
	}, nil
}

func RequestSnapshotFromRow(row sqlc.ServiceRequests) (request.Snapshot, error) {
	var payload request.Payload
	if err := json.Unmarshal(row.Payload, &payload); err != nil {
		return request.Snapshot{}, errs.Wrapf(err, "failed to decode payload of request %s", row.ID)
	}
	var result request.Payload
	if len(row.Result) > 0 {
		if err := json.Unmarshal(row.Result, &result); err != nil {
			return request.Snapshot{}, errs.Wrapf(err, "failed to decode result of request %s", row.ID)
		}
	}
	return request.Snapshot{
		ID:              row.ID,
		UserID:          row.UserID,
		Category:        category.Category(row.Category),
		Payload:         payload,
		InventoryPool:   pgconv.StringFromPgtype(row.InventoryPool),
		Fee:             money.FromKobo(row.FeeKobo),
		Paid:            row.Paid,
		Status:          request.Status(row.Status),
		AssignedAgentID: pgconv.UUIDPtrFromPgtype(row.AssignedAgentID),
		AllocatedCodeID: pgconv.UUIDPtrFromPgtype(row.AllocatedCodeID),
		Result:          result,
		FailureReason:   pgconv.StringFromPgtype(row.FailureReason),
		RetryCount:      int(row.RetryCount),
		MaxRetries:      int(row.MaxRetries),
		RefundHalted:    row.RefundHalted,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		AssignedAt:      pgconv.TimePtrFromPgtype(row.AssignedAt),
		CompletedAt:     pgconv.TimePtrFromPgtype(row.CompletedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func RequestFromRow(row sqlc.ServiceRequests) (*request.ServiceRequest, error) {
	s, err := RequestSnapshotFromRow(row)
	if err != nil {
		return nil, err
	}
	return request.Reconstruct(s), nil
}

func payloadOrEmpty(p request.Payload) request.Payload {
	if p == nil {
		return request.Payload{}
	}
	return p
}

// encodeResult stores an absent result as SQL NULL.
func encodeResult(p request.Payload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode result")
	}
	return b, nil
}
