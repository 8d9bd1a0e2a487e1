package services

// CreateUserRequest carries a new user's submitted fields.
type CreateUserRequest struct {
	FirstName string `json:"first_name" form:"first_name" label:"First name" validate:"notblank"`
	LastName  string `json:"last_name" form:"last_name" label:"Last name" validate:"notblank"`
	ImageURL  string `json:"image_url" form:"image_url"`
}

// UpdateUserRequest replaces every editable field of a user. An empty
// ImageURL resets the image to the placeholder.
type UpdateUserRequest struct {
	ID        uint   `json:"-" form:"-"`
	FirstName string `json:"first_name" form:"first_name" label:"First name" validate:"notblank"`
	LastName  string `json:"last_name" form:"last_name" label:"Last name" validate:"notblank"`
	ImageURL  string `json:"image_url" form:"image_url"`
}

// CreatePostRequest carries a new post and the names of the tags to attach.
type CreatePostRequest struct {
	UserID  uint     `json:"-" form:"-"`
	Title   string   `json:"title" form:"title" label:"Title" validate:"notblank"`
	Content string   `json:"content" form:"content" label:"Content" validate:"notblank"`
	Tags    []string `json:"tags" form:"tags"`
}

// UpdatePostRequest replaces a post's title, content and tag set. A nil or
// empty Tags clears every tag.
type UpdatePostRequest struct {
	ID      uint     `json:"-" form:"-"`
	Title   string   `json:"title" form:"title" label:"Title" validate:"notblank"`
	Content string   `json:"content" form:"content" label:"Content" validate:"notblank"`
	Tags    []string `json:"tags" form:"tags"`
}

// CreateTagRequest carries a new tag and the titles of the posts to attach.
type CreateTagRequest struct {
	Name  string   `json:"name" form:"name" label:"Name" validate:"notblank"`
	Posts []string `json:"posts" form:"posts"`
}

// UpdateTagRequest renames a tag and replaces its post set.
type UpdateTagRequest struct {
	ID    uint     `json:"-" form:"-"`
	Name  string   `json:"name" form:"name" label:"Name" validate:"notblank"`
	Posts []string `json:"posts" form:"posts"`
}
