package core

import (
	"fmt"
	"strconv"
	"strings"
)

// AdultAge is the minimum age for holding a job or having a spouse.
const AdultAge = 18

// Person is a household member. Job and spouse are shared references and go
// through SetJob and SetSpouse, which apply the age gate.
//
// The gate is checked when a value is assigned. Lowering Age afterwards does
// not clear a job or spouse that is already set.
type Person struct {
	FirstName string
	LastName  string
	Age       int

	job    *Job
	spouse *Person
}

// NewPerson creates a person with no job and no spouse.
func NewPerson(firstName, lastName string, age int) *Person {
	return &Person{FirstName: firstName, LastName: lastName, Age: age}
}

func (p *Person) Job() *Job {
	return p.job
}

// SetJob assigns j. For a person under AdultAge a non-nil job is dropped and
// the job is left empty.
func (p *Person) SetJob(j *Job) {
	if j != nil && !p.IsAdult() {
		p.job = nil
		return
	}
	p.job = j
}

func (p *Person) Spouse() *Person {
	return p.spouse
}

// SetSpouse assigns s with the same age gate as SetJob. The link is one-way;
// s is not modified.
func (p *Person) SetSpouse(s *Person) {
	if s != nil && !p.IsAdult() {
		p.spouse = nil
		return
	}
	p.spouse = s
}

func (p *Person) IsAdult() bool {
	return p.Age >= AdultAge
}

func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// String describes the person, their job and, recursively, their spouse.
// A person already being described further up the chain is written as a
// cycle marker, so mutual spouses terminate.
func (p *Person) String() string {
	var b strings.Builder
	p.describe(&b, make(map[*Person]struct{}))
	return b.String()
}

func (p *Person) describe(b *strings.Builder, seen map[*Person]struct{}) {
	if _, ok := seen[p]; ok {
		fmt.Fprintf(b, "<cycle: %s>", p.FullName())
		return
	}
	seen[p] = struct{}{}
	defer delete(seen, p)

	b.WriteString("[Person: firstName:")
	b.WriteString(p.FirstName)
	b.WriteString(" lastName:")
	b.WriteString(p.LastName)
	b.WriteString(" age:")
	b.WriteString(strconv.Itoa(p.Age))
	b.WriteString(" job:")
	if p.job != nil {
		b.WriteString(p.job.Description())
	} else {
		b.WriteString("nil")
	}
	b.WriteString(" spouse:")
	if p.spouse != nil {
		p.spouse.describe(b, seen)
	} else {
		b.WriteString("nil")
	}
	b.WriteString("]")
}
