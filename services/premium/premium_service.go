package premium

import (
	"context"
	"fmt"
	"time"

	"github.com/healthsure/premium-api/services"
	"github.com/healthsure/premium-api/services/cache"
	"github.com/healthsure/premium-api/services/monitoring/logging"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// QuoteInput is what the rating engine needs to price a policy.
type QuoteInput struct {
	Code        string
	SumInsured  string
	DateOfBirth string
}

type PremiumService struct {
	store     *services.RedisService
	quotes    *cache.QuoteCache
	logger    *logging.Logger
	tablePath string
}

func NewPremiumService(store *services.RedisService, quotes *cache.QuoteCache, logger *logging.Logger, tablePath string) *PremiumService {
	return &PremiumService{
		store:     store,
		quotes:    quotes,
		logger:    logger,
		tablePath: tablePath,
	}
}

// Quote prices a policy by looking up the matrix entry for the
// applicant's product, sum insured and risk band. Exactly one premium
// must be stored for that combination.
func (p *PremiumService) Quote(ctx context.Context, input QuoteInput) (string, error) {
	amount, err := decimal.NewFromString(input.SumInsured)
	if err != nil || !amount.IsPositive() {
		return "", fmt.Errorf("sum insured %q: %w", input.SumInsured, ErrInvalidInput)
	}

	age := ageInYears(input.DateOfBirth, time.Now())
	score := riskScore(age)
	p.logger.Info(fmt.Sprintf("quoting code %v sum %v age %v score %v", input.Code, input.SumInsured, age, score))

	if score == 0 {
		return "", fmt.Errorf("age %d is not ratable: %w", age, ErrRiskCalculation)
	}

	if hit, ok := p.quotes.Get(input.Code, input.SumInsured, score); ok {
		return hit, nil
	}

	key := input.Code + ":" + input.SumInsured
	rates, err := p.store.RatesByScore(ctx, key, score)
	if err != nil {
		p.logger.Error(fmt.Sprintf("fetching rates for %v: %v", key, err))
		return "", ErrInternal
	}

	if len(rates) != 1 {
		p.logger.Error(fmt.Sprintf("expected one premium for %v band %v, got %v", key, score, len(rates)))
		return "", ErrRiskCalculation
	}

	p.quotes.Put(input.Code, input.SumInsured, score, rates[0])
	return rates[0], nil
}

// ageInYears returns completed years of age at the reference time. An
// unparseable date of birth rates as age 0, which no band accepts.
func ageInYears(dob string, now time.Time) int {
	date, err := time.Parse(dateLayout, dob)
	if err != nil {
		return 0
	}

	years := now.Year() - date.Year()
	if now.Month() < date.Month() || (now.Month() == date.Month() && now.Day() < date.Day()) {
		years--
	}
	return years
}

// riskScore maps an age to its rating band. Band 0 means unratable.
func riskScore(age int) int {
	switch {
	case age >= 18 && age <= 35:
		return 1
	case age >= 36 && age <= 45:
		return 2
	case age >= 46 && age <= 55:
		return 3
	case age >= 56 && age <= 60:
		return 4
	case age >= 61 && age <= 65:
		return 5
	case age >= 66 && age <= 70:
		return 6
	case age > 70:
		return 7
	}
	return 0
}
