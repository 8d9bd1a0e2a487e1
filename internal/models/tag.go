package models

// Tag is a globally unique label that can be attached to many posts.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE"`
}

// PostTag is one row of the posts_tags join table. The pair is the primary key,
// so a post can be linked to a tag at most once.
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName pins the join table name shared by Post.Tags and Tag.Posts.
func (PostTag) TableName() string {
	return "posts_tags"
}

// All lists every model in migration order.
func All() []any {
	return []any{&User{}, &Post{}, &Tag{}, &PostTag{}}
}
