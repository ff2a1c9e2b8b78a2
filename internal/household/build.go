package household

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"household/internal/core"
	"household/internal/log"
)

// Household is a built family plus the member ids from its document.
type Household struct {
	Family *core.Family

	people []*core.Person
	byID   map[string]*core.Person
	ids    map[*core.Person]string
}

// ID returns the document id of p, or "" if p was not declared in it.
func (h *Household) ID(p *core.Person) string {
	return h.ids[p]
}

// Person looks a member up by document id.
func (h *Household) Person(id string) (*core.Person, bool) {
	p, ok := h.byID[id]
	return p, ok
}

// People returns every declared person in document order, including those
// outside the family.
func (h *Household) People() []*core.Person {
	return append([]*core.Person(nil), h.people...)
}

// Build turns the document into people, jobs and a family.
//
// Jobs and spouses go through the age-gated setters; one dropped for a minor
// is logged as a warning and is not an error. Members without an id get a
// generated one. Ids and references to them are compared without
// surrounding whitespace.
func (d *Document) Build(logger *log.Logger) (*Household, error) {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentHousehold)

	if len(d.Family.Spouses) != 2 {
		return nil, fmt.Errorf("%w: family needs exactly 2 spouses, got %d", ErrInvalidDocument, len(d.Family.Spouses))
	}

	h := &Household{
		byID: make(map[string]*core.Person, len(d.Members)),
		ids:  make(map[*core.Person]string, len(d.Members)),
	}
	jobs := make([]*core.Job, len(d.Members))

	for i, m := range d.Members {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := h.byID[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMember, id)
		}

		job, err := m.Job.build()
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", id, err)
		}
		jobs[i] = job

		p := core.NewPerson(normalizeName(m.FirstName), normalizeName(m.LastName), m.Age)
		h.people = append(h.people, p)
		h.byID[id] = p
		h.ids[p] = id
	}

	for i, m := range d.Members {
		p := h.people[i]
		id := h.ids[p]

		if jobs[i] != nil {
			p.SetJob(jobs[i])
			if p.Job() == nil {
				fields := log.NewFields().WithOperation(log.OpBuild).WithMember(id, p.Age)
				logger.Warn("job dropped for minor", append(fields.ToSlice(), log.FieldJob, jobs[i].Title())...)
			}
		}

		ref := strings.TrimSpace(m.Spouse)
		if ref == "" {
			continue
		}
		spouse, ok := h.byID[ref]
		if !ok {
			return nil, fmt.Errorf("%w: %q is the spouse of %q", ErrUnknownMember, ref, id)
		}
		p.SetSpouse(spouse)
		if p.Spouse() == nil {
			fields := log.NewFields().WithOperation(log.OpBuild).WithMember(id, p.Age)
			logger.Warn("spouse dropped for minor", append(fields.ToSlice(), log.FieldSpouse, ref)...)
		}
	}

	spouse1, err := h.lookup(d.Family.Spouses[0], "family spouse")
	if err != nil {
		return nil, err
	}
	spouse2, err := h.lookup(d.Family.Spouses[1], "family spouse")
	if err != nil {
		return nil, err
	}
	h.Family = core.NewFamily(spouse1, spouse2)

	for _, childID := range d.Family.Children {
		child, err := h.lookup(childID, "child")
		if err != nil {
			return nil, err
		}
		h.Family.HaveChild(child)
	}

	logger.Debug("household built",
		log.FieldOperation, log.OpBuild,
		log.FieldMembers, len(h.Family.Members()),
		log.FieldIncome, h.Family.HouseholdIncome())

	return h, nil
}

func (h *Household) lookup(id, role string) (*core.Person, error) {
	id = strings.TrimSpace(id)
	p, ok := h.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownMember, role, id)
	}
	return p, nil
}

func (j *JobSpec) build() (*core.Job, error) {
	if j == nil {
		return nil, nil
	}
	switch {
	case j.Hourly != nil && j.Salary != nil:
		return nil, fmt.Errorf("%w: job %q sets both hourly and salary", ErrInvalidDocument, j.Title)
	case j.Hourly != nil:
		return core.NewJob(j.Title, core.Hourly(*j.Hourly)), nil
	case j.Salary != nil:
		return core.NewJob(j.Title, core.Salary(*j.Salary)), nil
	}
	return nil, fmt.Errorf("%w: job %q needs hourly or salary", ErrInvalidDocument, j.Title)
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
