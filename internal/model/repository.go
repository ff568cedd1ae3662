package model

import "fmt"

// Repository identifies a repository on the hosting service.
type Repository struct {
	Owner string `validate:"required,max=39,gh_owner"`
	Name  string `validate:"required,max=100,gh_repo"`
}

// NewRepository validates the owner and name as repository path segments.
func NewRepository(owner, name string) (*Repository, error) {
	r := &Repository{Owner: owner, Name: name}
	if err := check("repository", r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r Repository) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}
