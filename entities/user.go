package entities

// User represents an author of blogs
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Blogs    []Blog `gorm:"foreignKey:AuthorID" json:"-"`
}
