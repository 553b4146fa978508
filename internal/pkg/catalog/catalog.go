package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"

	"gopkg.in/yaml.v3"
)

const DefaultMaxRetries = 3

// Catalog holds the static per-category settings the lifecycle engine reads at intake.
type Catalog struct {
	Categories map[category.Category]CategorySpec `yaml:"categories"`
}

type CategorySpec struct {
	MaxRetries int    `yaml:"max_retries"`
	DefaultFee string `yaml:"default_fee"`
	// Pools maps an inventory pool name to its default fee. Only pin_order uses it.
	Pools map[string]string `yaml:"pools"`
}

// PriceSeed is a default fee for one (category, variant) pair.
type PriceSeed struct {
	Category category.Category
	Variant  string
	Fee      money.Money
}

const defaultCatalogYAML = `
categories:
  identity:
    max_retries: 3
    default_fee: "150.00"
  bvn:
    max_retries: 3
    default_fee: "200.00"
  education:
    max_retries: 3
    default_fee: "500.00"
  cac:
    max_retries: 2
    default_fee: "2500.00"
  airtime_to_cash:
    max_retries: 3
    default_fee: "100.00"
  pin_order:
    max_retries: 2
    pools:
      waec: "4000.00"
      neco: "3500.00"
      nabteb: "3000.00"
      jamb: "6200.00"
`

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse([]byte(defaultCatalogYAML))
	if err != nil {
		panic("invalid built-in catalog: " + err.Error())
	}
	return c
}

// Load reads the catalog at path, or returns Default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	for cat, spec := range c.Categories {
		if !cat.IsValid() {
			return fmt.Errorf("catalog: unknown category %q", cat)
		}
		if spec.MaxRetries < 0 {
			return fmt.Errorf("catalog: %s max_retries must not be negative", cat)
		}
		if spec.DefaultFee != "" {
			if _, err := parseFee(spec.DefaultFee); err != nil {
				return fmt.Errorf("catalog: %s default_fee: %w", cat, err)
			}
		}
		if len(spec.Pools) > 0 && cat.IsAgentServiced() {
			return fmt.Errorf("catalog: %s is agent-serviced and cannot declare pools", cat)
		}
		for pool, fee := range spec.Pools {
			if pool != strings.ToLower(strings.TrimSpace(pool)) || pool == "" {
				return fmt.Errorf("catalog: pool name %q must be lowercase", pool)
			}
			if fee == "" {
				continue
			}
			if _, err := parseFee(fee); err != nil {
				return fmt.Errorf("catalog: pool %s fee: %w", pool, err)
			}
		}
	}
	return nil
}

func (c *Catalog) MaxRetries(cat category.Category) int {
	spec, ok := c.Categories[cat]
	if !ok {
		return DefaultMaxRetries
	}
	return spec.MaxRetries
}

// AllowedPool reports whether pool is a configured PIN pool.
func (c *Catalog) AllowedPool(pool string) bool {
	_, ok := c.Categories[category.PinOrder].Pools[pool]
	return ok
}

func (c *Catalog) Pools() []string {
	pools := make([]string, 0, len(c.Categories[category.PinOrder].Pools))
	for p := range c.Categories[category.PinOrder].Pools {
		pools = append(pools, p)
	}
	sort.Strings(pools)
	return pools
}

// DefaultPrices lists every configured default fee, ordered by category then variant.
func (c *Catalog) DefaultPrices() []PriceSeed {
	var seeds []PriceSeed
	for _, cat := range category.All() {
		spec, ok := c.Categories[cat]
		if !ok {
			continue
		}
		if spec.DefaultFee != "" {
			fee, _ := parseFee(spec.DefaultFee)
			seeds = append(seeds, PriceSeed{Category: cat, Fee: fee})
		}
		for _, pool := range sortedKeys(spec.Pools) {
			if spec.Pools[pool] == "" {
				continue
			}
			fee, _ := parseFee(spec.Pools[pool])
			seeds = append(seeds, PriceSeed{Category: cat, Variant: pool, Fee: fee})
		}
	}
	return seeds
}

func parseFee(s string) (money.Money, error) {
	fee, err := money.Parse(s)
	if err != nil {
		return money.Money{}, err
	}
	if !fee.IsPositive() {
		return money.Money{}, fmt.Errorf("fee %s must be positive", s)
	}
	return fee, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
