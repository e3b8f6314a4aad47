package models

type Video struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	PhoneModel   string `json:"phone_model"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Views        int64  `json:"views"`
}

func (v Video) GetID() int64 { return v.ID }
