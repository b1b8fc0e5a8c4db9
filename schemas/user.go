package schemas

import "blog-server/entities"

// UserRequest is the body accepted by POST /user.
type UserRequest struct {
	Name     *string `json:"name" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// ToEntity builds a new user without a password. The plaintext is hashed by
// the use case.
func (r UserRequest) ToEntity() *entities.User {
	return &entities.User{
		Name:  value(r.Name),
		Email: value(r.Email),
	}
}

// PlainPassword returns the submitted plaintext password.
func (r UserRequest) PlainPassword() string {
	return value(r.Password)
}

// UserUpdateRequest is the body accepted by PUT /user/:id. It mirrors ShowUser;
// Blogs is accepted but relationships are not rewritten through this endpoint.
type UserUpdateRequest struct {
	Name  *string       `json:"name" binding:"required"`
	Email *string       `json:"email" binding:"required"`
	Blogs []BlogSummary `json:"blogs"`
}

// ToEntity builds the replacement name and email for user id.
func (r UserUpdateRequest) ToEntity(id uint) *entities.User {
	return &entities.User{ID: id, Name: value(r.Name), Email: value(r.Email)}
}

// ShowUser is the public view of a user. It never carries the password.
type ShowUser struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Blogs []BlogSummary `json:"blogs"`
}

func NewShowUser(u *entities.User) ShowUser {
	return ShowUser{
		Name:  u.Name,
		Email: u.Email,
		Blogs: newBlogSummaries(u.Blogs),
	}
}

func NewShowUsers(users []entities.User) []ShowUser {
	out := make([]ShowUser, 0, len(users))
	for i := range users {
		out = append(out, NewShowUser(&users[i]))
	}
	return out
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID uint `uri:"id" binding:"required,min=1"`
}
