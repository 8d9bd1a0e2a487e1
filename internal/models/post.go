package models

import "time"

// CreatedAtLayout renders timestamps as e.g. "Tue 03 05 2024, 09:07 PM".
const CreatedAtLayout = "Mon 01 02 2006, 03:04 PM"

// Post represents a blog post owned by exactly one user.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime:false"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty"`
	Tags      []Tag     `json:"tags,omitempty" gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE"`
}

// FormattedCreatedAt returns the creation time in CreatedAtLayout.
func (p Post) FormattedCreatedAt() string {
	return p.CreatedAt.Format(CreatedAtLayout)
}

// TagNames returns the names of the loaded tags in their loaded order.
func (p Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}
