package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldPath      = "path"
	FieldFormat    = "format"
	FieldMember    = "member"
	FieldMembers   = "members"
	FieldAge       = "age"
	FieldJob       = "job"
	FieldSpouse    = "spouse"
	FieldIncome    = "income"
	FieldCurrency  = "currency"
	FieldAmount    = "amount"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentCLI       = "cli"
	ComponentConfig    = "config"
	ComponentHousehold = "household"
	ComponentReport    = "report"
	ComponentMoney     = "money"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpBuild    = "build"
	OpValidate = "validate"
	OpRender   = "render"
	OpConvert  = "convert"
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMember adds member-related fields
func (f LogFields) WithMember(id string, age int) LogFields {
	f[FieldMember] = id
	f[FieldAge] = age
	return f
}

// WithMoney adds amount and currency fields
func (f LogFields) WithMoney(amount int64, currency string) LogFields {
	f[FieldAmount] = amount
	f[FieldCurrency] = currency
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
