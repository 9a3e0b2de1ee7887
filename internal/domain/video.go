package domain

import "time"

// Video is one entry of the exercise video catalog.
type Video struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
}

// CatalogVideo is a catalog entry as kept by the reference backend. Media
// can be stored either as plain URLs or as object-store keys that are
// presigned on every read.
type CatalogVideo struct {
	ID        int       `bson:"_id"`
	Name      string    `bson:"name"`
	ImageURL  string    `bson:"imageUrl,omitempty"`
	VideoURL  string    `bson:"videoUrl,omitempty"`
	ImageKey  string    `bson:"imageKey,omitempty"`
	VideoKey  string    `bson:"videoKey,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}
