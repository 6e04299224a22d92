package session

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/username/biz-days/internal/businesstime"
	"github.com/username/biz-days/internal/store"
)

// Store keys for the persisted form fields
const (
	KeyStartDate  = "startDate"
	KeyEndDate    = "endDate"
	KeyHourlyRate = "hourlyRate"
)

// ErrIncompleteRange is returned by Calculate when either date is empty
var ErrIncompleteRange = errors.New("start and end dates are required")

// FormState is the raw text of the three persisted fields
type FormState struct {
	StartDate  string
	EndDate    string
	HourlyRate string
}

// Session holds the form state for one run and mirrors it to a Store
type Session struct {
	store      store.Store
	calculator *businesstime.Calculator
	logger     *zap.Logger

	state   FormState
	metrics *businesstime.Metrics
}

// New creates an empty session
func New(st store.Store, calculator *businesstime.Calculator, logger *zap.Logger) *Session {
	return &Session{
		store:      st,
		calculator: calculator,
		logger:     logger,
	}
}

// Load seeds the form fields from the store. Values are taken verbatim;
// absent keys keep the empty default.
func (s *Session) Load() error {
	fields := []struct {
		key    string
		target *string
	}{
		{KeyStartDate, &s.state.StartDate},
		{KeyEndDate, &s.state.EndDate},
		{KeyHourlyRate, &s.state.HourlyRate},
	}

	for _, f := range fields {
		value, ok, err := s.store.Get(f.key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.key, err)
		}
		if ok {
			*f.target = value
		}
	}

	s.logger.Debug("Form state rehydrated",
		zap.String("start_date", s.state.StartDate),
		zap.String("end_date", s.state.EndDate),
		zap.String("hourly_rate", s.state.HourlyRate))

	return nil
}

// State returns the current raw field values
func (s *Session) State() FormState {
	return s.state
}

// SetStartDate updates the start date field. It is persisted on the next successful Calculate.
func (s *Session) SetStartDate(value string) {
	s.state.StartDate = value
}

// SetEndDate updates the end date field. It is persisted on the next successful Calculate.
func (s *Session) SetEndDate(value string) {
	s.state.EndDate = value
}

// SetHourlyRate updates the rate field and persists the raw text immediately
func (s *Session) SetHourlyRate(value string) {
	s.state.HourlyRate = value
	s.persist(KeyHourlyRate, value)
}

// Calculate counts business days for the current range and persists both dates.
// On error the previous metrics are kept and nothing is written.
func (s *Session) Calculate() (businesstime.Metrics, error) {
	if s.state.StartDate == "" || s.state.EndDate == "" {
		return businesstime.Metrics{}, ErrIncompleteRange
	}

	r, err := businesstime.ParseRange(s.state.StartDate, s.state.EndDate)
	if err != nil {
		return businesstime.Metrics{}, err
	}

	if r.Reversed() {
		s.logger.Info("End date precedes start date, range is empty",
			zap.String("start_date", s.state.StartDate),
			zap.String("end_date", s.state.EndDate))
	}

	metrics := s.calculator.Calculate(r.Days())
	s.metrics = &metrics

	s.persist(KeyStartDate, s.state.StartDate)
	s.persist(KeyEndDate, s.state.EndDate)

	s.logger.Info("Business time calculated",
		zap.String("start_date", s.state.StartDate),
		zap.String("end_date", s.state.EndDate),
		zap.Int("business_days", metrics.BusinessDays),
		zap.Int("business_hours", metrics.BusinessHours))

	return metrics, nil
}

// Metrics returns the result of the last successful Calculate
func (s *Session) Metrics() (businesstime.Metrics, bool) {
	if s.metrics == nil {
		return businesstime.Metrics{}, false
	}
	return *s.metrics, true
}

// MonthlyEquivalent projects the current rate over the last calculated hours
func (s *Session) MonthlyEquivalent() (decimal.Decimal, bool) {
	var hours *int
	if s.metrics != nil {
		hours = &s.metrics.BusinessHours
	}
	return businesstime.Project(hours, s.state.HourlyRate)
}

// persist writes one key; a failed write is logged and the session carries on
func (s *Session) persist(key, value string) {
	if err := s.store.Set(key, value); err != nil {
		s.logger.Warn("Failed to persist form field",
			zap.String("key", key),
			zap.Error(err))
	}
}
