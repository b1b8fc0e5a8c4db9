package entities

// Blog is a post stored in the blogs table. AuthorID is nullable and is not
// backed by a foreign-key constraint.
type Blog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	AuthorID  *uint  `gorm:"index" json:"author_id"`
	Author    *User  `gorm:"foreignKey:AuthorID" json:"-"`
}
