package models

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries optional fields; nil means unchanged.
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Image    *string `json:"image"`
}

type AddBookmarkRequest struct {
	ID    int64       `json:"id" binding:"required"`
	Type  ContentType `json:"type" binding:"required,contenttype"`
	Title string      `json:"title" binding:"required"`
	Image string      `json:"image"`
}

type AddHistoryRequest struct {
	ID         int64      `json:"id" binding:"required"`
	Image      string     `json:"image"`
	Title      string     `json:"title" binding:"required"`
	SearchType SearchType `json:"searchType" binding:"required,searchtype"`
}
