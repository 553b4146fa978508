//go:build e2e

package lifecycle_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/handler/dto/request"
	"vas-broker/internal/handler/dto/response"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/infra/uow"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/shared"
	"vas-broker/tests/common/builder"
	"vas-broker/tests/common/dbtest"
	"vas-broker/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// holdFor keeps each transaction open long enough for the others to collide with it.
const holdFor = 25 * time.Millisecond

func (s *LifecycleSuite) agentCounters(id uuid.UUID) (active, completed int) {
	err := s.DB.QueryRow(context.Background(),
		"SELECT current_active, total_completed FROM agents WHERE id = $1", id).Scan(&active, &completed)
	require.NoError(s.T(), err)
	return active, completed
}

func (s *LifecycleSuite) countRequests(status string) int {
	var n int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM service_requests WHERE status = $1", status).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

// =============================================================================
// Storage guards under contention
// =============================================================================

func (s *LifecycleSuite) TestConcurrentAgentSelection() {
	s.Run("Normal case: never more bookings than capacity", func() {
		t := s.T()
		const capacity, workers = 3, 12

		agentID := dbtest.CreateAgent(t, s.DB, "Ngozi Obi", capacity, category.BVN)
		work := uow.NewPostgresUoW(s.DB, sqlc.New())

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			booked   int
			failures []error
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := work.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
					if _, err := tx.Agents().SelectAgent(ctx, category.BVN, time.Now()); err != nil {
						return err
					}
					time.Sleep(holdFor)
					return nil
				})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					booked++
				case !errs.Is(err, errs.ErrNoAgentAvailable):
					failures = append(failures, err)
				}
			}()
		}
		wg.Wait()

		require.Empty(t, failures)
		active, _ := s.agentCounters(agentID)
		assert.LessOrEqual(t, booked, capacity)
		assert.Positive(t, booked)
		assert.Equal(t, booked, active, "stored load must match committed bookings")
	})
}

func (s *LifecycleSuite) TestConcurrentCodeClaims() {
	s.Run("Normal case: each code goes to exactly one claimant", func() {
		t := s.T()
		const codes, workers = 3, 10

		dbtest.CreateCodes(t, s.DB, "neco", "N-001", "N-002", "N-003")
		work := uow.NewPostgresUoW(s.DB, sqlc.New())

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			claimed  = map[uuid.UUID]uuid.UUID{}
			failures []error
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				requestID := uuid.New()
				var codeID uuid.UUID
				err := work.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
					c, err := tx.Inventory().Claim(ctx, "neco", requestID, time.Now())
					if err != nil {
						return err
					}
					codeID = c.ID()
					time.Sleep(holdFor)
					return nil
				})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					if prev, dup := claimed[codeID]; dup {
						failures = append(failures, fmt.Errorf("code %s claimed by %s and %s", codeID, prev, requestID))
					}
					claimed[codeID] = requestID
				case !errs.Is(err, errs.ErrNoStockAvailable):
					failures = append(failures, err)
				}
			}()
		}
		wg.Wait()

		require.Empty(t, failures)
		assert.LessOrEqual(t, len(claimed), codes)
		assert.Positive(t, len(claimed))

		var reserved int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM inventory_codes WHERE pool = 'neco' AND status = 'reserved'").Scan(&reserved)
		require.NoError(t, err)
		assert.Equal(t, len(claimed), reserved)
	})
}

// =============================================================================
// Concurrent sweeps and agent actions over HTTP
// =============================================================================

func (s *LifecycleSuite) sweepConcurrently(workers int) []response.SweepResponse {
	admin := s.token(s.T(), uuid.New(), user.RoleAdmin)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		reports []response.SweepResponse
		codes   []int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sweepURL, nil, admin)
			var res response.SweepResponse
			decodeErr := json.Unmarshal(w.Body.Bytes(), &res)
			mu.Lock()
			defer mu.Unlock()
			codes = append(codes, w.Code)
			if decodeErr == nil {
				reports = append(reports, res)
			}
		}()
	}
	wg.Wait()

	for _, code := range codes {
		require.Equal(s.T(), http.StatusOK, code)
	}
	return reports
}

func (s *LifecycleSuite) TestConcurrentSweeps() {
	s.Run("Normal case: agent capacity holds across racing sweeps", func() {
		t := s.T()
		const capacity = 3

		customerID := uuid.New()
		dbtest.CreateFundedWallet(t, s.DB, customerID, money.FromNaira(5000))
		agentID := dbtest.CreateAgent(t, s.DB, "Tunde Bello", capacity, category.BVN)
		customer := s.token(t, customerID, user.RoleCustomer)
		body := builder.NewRequestBuilder().BuildSubmitRequestDTO()
		for i := range 8 {
			s.submit(t, customer, fmt.Sprintf("race-bvn-%d", i), body)
		}

		reports := s.sweepConcurrently(6)

		assigned := 0
		for _, r := range reports {
			assigned += r.Assigned
		}
		active, _ := s.agentCounters(agentID)
		assert.LessOrEqual(t, assigned, capacity)
		assert.Equal(t, assigned, active)
		assert.Equal(t, assigned, s.countRequests("assigned"))

		// A quiet sweep fills whatever a skipped lock left open
		s.sweep(t)
		active, _ = s.agentCounters(agentID)
		assert.Equal(t, capacity, active)
		assert.Equal(t, capacity, s.countRequests("assigned"))
		assert.Equal(t, 8-capacity, s.countRequests("queued"))
	})

	s.Run("Normal case: racing sweeps hand out distinct PINs", func() {
		t := s.T()

		customerID := uuid.New()
		dbtest.CreateFundedWallet(t, s.DB, customerID, money.FromNaira(30000))
		dbtest.CreateCodes(t, s.DB, "waec", "W-100", "W-200")
		customer := s.token(t, customerID, user.RoleCustomer)
		body := builder.NewRequestBuilder().AsPinOrder("waec").BuildSubmitRequestDTO()
		var ids []string
		for i := range 5 {
			ids = append(ids, s.submit(t, customer, fmt.Sprintf("race-pin-%d", i), body).ID)
		}

		s.sweepConcurrently(6)
		s.sweep(t)

		pins := map[string]string{}
		for _, id := range ids {
			got := s.getRequest(t, customer, id)
			if got.Status != "completed" {
				assert.Equal(t, "queued", got.Status)
				continue
			}
			pin := got.Result["pin"]
			prev, dup := pins[pin]
			assert.False(t, dup, "pin %s delivered to %s and %s", pin, prev, id)
			pins[pin] = id
		}
		assert.Len(t, pins, 2)
		assert.Equal(t, 3, s.countRequests("queued"))
	})

	s.Run("Normal case: racing completions release the agent once", func() {
		t := s.T()

		customerID := uuid.New()
		dbtest.CreateFundedWallet(t, s.DB, customerID, money.FromNaira(500))
		agentID := dbtest.CreateAgent(t, s.DB, "Amaka Nwosu", 1, category.BVN)
		customer := s.token(t, customerID, user.RoleCustomer)
		agent := s.token(t, agentID, user.RoleAgent)
		created := s.submit(t, customer, "race-complete", builder.NewRequestBuilder().BuildSubmitRequestDTO())
		s.sweep(t)

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			fresh    int
			statuses []int
		)
		for range 6 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(completeURL, created.ID),
					request.CompleteRequest{Result: map[string]string{"full_name": "Ife Ade"}}, agent)
				var res response.TransitionResponse
				_ = json.Unmarshal(w.Body.Bytes(), &res)
				mu.Lock()
				defer mu.Unlock()
				statuses = append(statuses, w.Code)
				if w.Code == http.StatusOK && !res.Replayed {
					fresh++
				}
			}()
		}
		wg.Wait()

		for _, code := range statuses {
			require.Equal(t, http.StatusOK, code)
		}
		assert.Equal(t, 1, fresh)
		active, completed := s.agentCounters(agentID)
		assert.Equal(t, 0, active)
		assert.Equal(t, 1, completed)
	})
}
