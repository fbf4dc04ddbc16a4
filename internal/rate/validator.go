package rate

import (
	"errors"
	"fmt"
	"slices"

	"belrates/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCodeRequired = errors.New("currency code is required")
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
)

// CurrencyValidator checks user input before a lookup is attempted.
type CurrencyValidator struct {
	supported []domain.Currency // read only copy
	validate  *validator.Validate
}

// ValidateCode resolves code to a currency the provider can be asked about.
func (v *CurrencyValidator) ValidateCode(code string) (domain.Currency, error) {
	if code == "" {
		return "", ErrCodeRequired
	}
	cur, err := domain.ParseCurrency(code)
	if err != nil {
		return "", err
	}
	if !slices.Contains(v.supported, cur) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, cur)
	}
	return cur, nil
}

// ValidateDate accepts an empty date (latest rate) or a calendar date.
func (v *CurrencyValidator) ValidateDate(date string) error {
	if err := v.validate.Var(date, "omitempty,datetime=2006-01-02"); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	codes := make([]string, 0, len(v.supported))
	for _, c := range v.supported {
		codes = append(codes, c.Code())
	}
	slices.Sort(codes)
	return codes
}

func NewValidator(supported []domain.Currency) *CurrencyValidator {
	return &CurrencyValidator{
		supported: slices.Clone(supported),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}
