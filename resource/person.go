package resource

// Person is an author or committer as recorded on a commit. It has no
// identity of its own and is never loaded.
type Person struct {
	Name  string
	Email string
	Login string

	client Client
}

// NewPerson builds a person from the name/email/login fields of attrs.
func NewPerson(client Client, attrs Attributes) *Person {
	return &Person{
		Name:   scalarString(attrs["name"]),
		Email:  scalarString(attrs["email"]),
		Login:  scalarString(attrs["login"]),
		client: client,
	}
}

func (p *Person) String() string {
	if p.Email == "" {
		return p.Name
	}
	return p.Name + " <" + p.Email + ">"
}

// User resolves the person to an account, or nil when no login is recorded.
func (p *Person) User() *User {
	if p.Login == "" {
		return nil
	}
	return NewUser(p.client, Attributes{"login": p.Login})
}

// Modification is one file's diff within a commit.
type Modification struct {
	Filename string
	Diff     string
}
