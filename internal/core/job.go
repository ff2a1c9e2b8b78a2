package core

import (
	"fmt"
	"math"
	"strconv"
)

const (
	KindHourly = "Hourly"
	KindSalary = "Salary"
)

type (
	// Compensation is the pay structure of a Job. Only Hourly and Salary
	// implement it.
	Compensation interface {
		compensation()
		CompensationKind() string
	}

	// Hourly is a wage per hour worked.
	Hourly float64

	// Salary is a fixed annual amount.
	Salary uint64

	// Job is a title plus a compensation. The compensation kind is fixed at
	// construction; raises only change its value.
	Job struct {
		title string
		pay   Compensation
	}
)

func (Hourly) compensation() {}

func (Hourly) CompensationKind() string { return KindHourly }

func (Salary) compensation() {}

func (Salary) CompensationKind() string { return KindSalary }

// NewJob creates a job. A nil compensation is treated as a zero salary.
func NewJob(title string, pay Compensation) *Job {
	if pay == nil {
		pay = Salary(0)
	}
	return &Job{title: title, pay: pay}
}

func (j *Job) Title() string {
	return j.title
}

func (j *Job) Compensation() Compensation {
	return j.pay
}

// Description names the job, its kind and its current rate or amount.
func (j *Job) Description() string {
	switch pay := j.pay.(type) {
	case Hourly:
		return fmt.Sprintf("%s: Hourly job at %s per hour", j.title, strconv.FormatFloat(float64(pay), 'f', -1, 64))
	case Salary:
		return fmt.Sprintf("%s: Salary job at %d annually", j.title, uint64(pay))
	}
	return j.title
}

func (j *Job) String() string {
	return j.Description()
}

// CalculateIncome returns the pay for the given hours. Salaried jobs ignore
// hours. Incomes beyond the int range saturate at its bounds.
func (j *Job) CalculateIncome(hours int) int {
	switch pay := j.pay.(type) {
	case Hourly:
		return saturateInt(math.Floor(float64(pay) * float64(hours)))
	case Salary:
		if uint64(pay) > math.MaxInt {
			return math.MaxInt
		}
		return int(pay)
	}
	return 0
}

func saturateInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// RaiseByAmount adds amount to the hourly rate, or its integer part to the
// salary. A salary never drops below zero.
func (j *Job) RaiseByAmount(amount float64) {
	switch pay := j.pay.(type) {
	case Hourly:
		j.pay = pay + Hourly(amount)
	case Salary:
		j.pay = clampSalary(float64(pay) + math.Trunc(amount))
	}
}

// RaiseByPercent scales the pay by 1+percent, so 0.1 is a ten percent raise
// and -0.1 a ten percent cut. Salaries are floored and never drop below zero.
func (j *Job) RaiseByPercent(percent float64) {
	switch pay := j.pay.(type) {
	case Hourly:
		j.pay = pay * Hourly(1+percent)
	case Salary:
		j.pay = clampSalary(math.Floor(float64(pay) * (1 + percent)))
	}
}

func clampSalary(v float64) Salary {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxUint64 {
		return Salary(math.MaxUint64)
	}
	return Salary(v)
}
