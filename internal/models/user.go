package models

// DefaultImageURL is stored for users who submit no image.
const DefaultImageURL = "https://static.vecteezy.com/system/resources/previews/002/318/271/original/user-profile-icon-free-vector.jpg"

// User represents an author of posts.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(50);not null"`
	ImageURL  string `json:"image_url" gorm:"type:text;not null"`
	Posts     []Post `json:"posts,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// FullName returns "first last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
