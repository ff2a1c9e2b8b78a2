package core

import "math"

// AnnualHours is the number of hours a year used to annualize hourly pay.
const AnnualHours = 2000

// Family groups two founding spouses and their children. Members keep
// insertion order and are never removed or deduplicated.
type Family struct {
	spouse1 *Person
	spouse2 *Person
	members []*Person
}

func NewFamily(spouse1, spouse2 *Person) *Family {
	return &Family{
		spouse1: spouse1,
		spouse2: spouse2,
		members: []*Person{spouse1, spouse2},
	}
}

func (f *Family) Spouse1() *Person {
	return f.spouse1
}

func (f *Family) Spouse2() *Person {
	return f.spouse2
}

// Members returns a copy of the member list.
func (f *Family) Members() []*Person {
	return append([]*Person(nil), f.members...)
}

// HaveChild appends child to the members and returns it. The child itself is
// not modified and duplicates are kept.
func (f *Family) HaveChild(child *Person) *Person {
	f.members = append(f.members, child)
	return child
}

// MemberIncome is what p adds to the household income: a year of pay for an
// adult with a job, zero otherwise.
func MemberIncome(p *Person) int {
	if p == nil || !p.IsAdult() || p.job == nil {
		return 0
	}
	return p.job.CalculateIncome(AnnualHours)
}

// HouseholdIncome sums MemberIncome over all members in order. The sum
// saturates at the int bounds.
func (f *Family) HouseholdIncome() int {
	total := 0
	for _, m := range f.members {
		total = addInt(total, MemberIncome(m))
	}
	return total
}

func addInt(a, b int) int {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt
	case b < 0 && sum > a:
		return math.MinInt
	}
	return sum
}
