package model

import "time"

type User struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	SubscriptionStatus int       `json:"-"`
	CreatedAt          time.Time `json:"-"`
}

type Admin struct {
	Username     string
	PasswordHash string
}

type Collection struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   []byte    `json:"-"`
	Tier        string    `json:"tier"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`

	// ThumbnailURL is filled in by the media materializer, never stored.
	ThumbnailURL *string `json:"thumbnail_url"`
}

type Post struct {
	ID           int       `json:"id"`
	CollectionID int       `json:"collection_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Thumbnail    []byte    `json:"-"`
	Video        []byte    `json:"-"`
	Type         string    `json:"type"`
	Duration     *string   `json:"duration"`
	CreatedAt    time.Time `json:"created_at"`

	ThumbnailURL *string `json:"thumbnail_url"`
	VideoURL     *string `json:"video_url"`
}

type Session struct {
	ID        string
	Username  string
	Role      string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type SubscriptionPlan struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Tier    string  `json:"tier"`
	Billing string  `json:"billing"`
	Price   float64 `json:"price"`
}
