package ports

// Field is a form input the autofill reads from or writes to.
type Field interface {
	Value() string
	SetValue(value string)
}
