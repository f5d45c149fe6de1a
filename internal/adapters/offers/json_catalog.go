package offers

import (
	"context"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"

	validator "github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// offerRecord is one entry of the offers file. Numeric fields are pointers
// so a missing value can be told apart from zero.
type offerRecord struct {
	Code         string `json:"code" validate:"required"`
	DiscountPerc *int   `json:"discount_perc" validate:"required,gte=0,lte=100"`
	MinDistance  *int   `json:"min_distance" validate:"required,gte=0"`
	MaxDistance  *int   `json:"max_distance" validate:"required,gte=0"`
	MinWeight    *int   `json:"min_weight" validate:"required,gte=0"`
	MaxWeight    *int   `json:"max_weight" validate:"required,gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (r offerRecord) toOffer() (domain.Offer, error) {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, describe(fe))
			}
			return domain.Offer{}, errors.New(strings.Join(parts, "; "))
		}
		return domain.Offer{}, err
	}

	o := domain.Offer{
		Code:            r.Code,
		DiscountPercent: *r.DiscountPerc,
		MinDistance:     *r.MinDistance,
		MaxDistance:     *r.MaxDistance,
		MinWeight:       *r.MinWeight,
		MaxWeight:       *r.MaxWeight,
	}
	if o.MinDistance > o.MaxDistance {
		return domain.Offer{}, fmt.Errorf("min_distance %d exceeds max_distance %d", o.MinDistance, o.MaxDistance)
	}
	if o.MinWeight > o.MaxWeight {
		return domain.Offer{}, fmt.Errorf("min_weight %d exceeds max_weight %d", o.MinWeight, o.MaxWeight)
	}
	return o, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// JSONCatalog is an offer catalog read from a JSON array of offers.
// It is safe for concurrent use; Reload swaps the whole content.
type JSONCatalog struct {
	mu       sync.RWMutex
	offers   map[string]domain.Offer
	warnings *multierror.Error
}

func NewJSONCatalog() *JSONCatalog {
	return &JSONCatalog{offers: map[string]domain.Offer{}}
}

// Decode builds a catalog from r. Malformed JSON is an error; offers with
// invalid values are skipped and reported by Warnings.
func Decode(r io.Reader) (*JSONCatalog, error) {
	c := NewJSONCatalog()
	if err := c.replace(r); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads the catalog at path. A missing file is not an error: it
// is logged and an empty catalog is returned.
func LoadFile(ctx context.Context, path string) (*JSONCatalog, error) {
	c := NewJSONCatalog()
	if err := c.Reload(ctx, path); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the catalog with the content of path. When the file is
// missing the catalog becomes empty.
func (c *JSONCatalog) Reload(ctx context.Context, path string) (err error) {
	defer obs.Time(ctx, "offers.Reload")(&err)
	logger := zerolog.Ctx(ctx)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("path", path).Msg("offers file not found, no offers will apply")
		c.mu.Lock()
		c.offers = map[string]domain.Offer{}
		c.warnings = nil
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("load offers: open %q: %w", path, err)
	}
	defer f.Close()

	if err := c.replace(f); err != nil {
		return fmt.Errorf("load offers %q: %w", path, err)
	}

	if w := c.Warnings(); w != nil {
		logger.Warn().Str("path", path).Err(w).Msg("some offers were ignored")
	}
	logger.Debug().Str("path", path).Int("offers", c.Len()).Msg("offers loaded")
	return nil
}

func (c *JSONCatalog) replace(r io.Reader) error {
	var records []offerRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return fmt.Errorf("parse offers json: %w", err)
	}

	offers := make(map[string]domain.Offer, len(records))
	var warnings *multierror.Error

	for i, rec := range records {
		rec.Code = strings.TrimSpace(rec.Code)

		o, err := rec.toOffer()
		if err != nil {
			warnings = multierror.Append(warnings,
				fmt.Errorf("%w: offer #%d %q: %v", domain.ErrInvalidOffer, i+1, rec.Code, err))
			continue
		}
		if _, dup := offers[o.Code]; dup {
			warnings = multierror.Append(warnings,
				fmt.Errorf("%w: offer #%d %q: duplicate code, first definition kept", domain.ErrInvalidOffer, i+1, o.Code))
			continue
		}
		offers[o.Code] = o
	}

	if warnings != nil {
		obs.ObserveRejectedOffers(len(warnings.Errors))
	}

	c.mu.Lock()
	c.offers = offers
	c.warnings = warnings
	c.mu.Unlock()
	return nil
}

// Lookup implements ports.OfferCatalog.
func (c *JSONCatalog) Lookup(code string) (domain.Offer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.offers[strings.TrimSpace(code)]
	return o, ok
}

func (c *JSONCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.offers)
}

// Offers returns the accepted offers sorted by code.
func (c *JSONCatalog) Offers() []domain.Offer {
	c.mu.RLock()
	out := make([]domain.Offer, 0, len(c.offers))
	for _, o := range c.offers {
		out = append(out, o)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Warnings returns every offer rejected by the last load, or nil.
func (c *JSONCatalog) Warnings() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.warnings.ErrorOrNil()
}
