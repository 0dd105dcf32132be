package tui

import "github.com/MKhiriev/bloglist/models"

type blogsLoadedMsg struct {
	blogs []models.Blog
	err   error
}

type blogLikedMsg struct {
	blog models.Blog
	err  error
}

type blogDeletedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	url string
	err error
}
