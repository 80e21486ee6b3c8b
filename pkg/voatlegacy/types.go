package voatlegacy

// Legacy responses use a different casing and shape than the v1 API, so the
// types are duplicated here rather than shared with the voat package.

// Submission is a submission as returned by the legacy API.
type Submission struct {
	ID              int64   `json:"Id"`
	Name            string  `json:"Name"`
	Subverse        string  `json:"Subverse"`
	Title           string  `json:"Title"`
	Type            int     `json:"Type"`
	MessageContent  string  `json:"MessageContent,omitempty"`
	Linkdescription string  `json:"Linkdescription,omitempty"`
	Likes           int     `json:"Likes"`
	Dislikes        int     `json:"Dislikes"`
	CommentCount    int     `json:"CommentCount"`
	Date            string  `json:"Date"`
	LastEditDate    string  `json:"LastEditDate,omitempty"`
	Thumbnail       string  `json:"Thumbnail,omitempty"`
	Rank            float64 `json:"Rank"`
}

// Comment is a comment as returned by the legacy API.
type Comment struct {
	ID             int64  `json:"Id"`
	ParentID       int64  `json:"ParentId,omitempty"`
	MessageID      int64  `json:"MessageId"`
	Name           string `json:"Name"`
	CommentContent string `json:"CommentContent"`
	Likes          int    `json:"Likes"`
	Dislikes       int    `json:"Dislikes"`
	Date           string `json:"Date"`
	LastEditDate   string `json:"LastEditDate,omitempty"`
}

// Subverse is a subverse as returned by the legacy API.
type Subverse struct {
	Name            string `json:"Name"`
	Title           string `json:"Title"`
	Description     string `json:"Description"`
	SideBar         string `json:"SideBar,omitempty"`
	CreationDate    string `json:"CreationDate"`
	SubscriberCount int    `json:"SubscriberCount"`
	RatedAdult      bool   `json:"RatedAdult"`
	Type            string `json:"Type,omitempty"`
}

// UserInfo is a user profile as returned by the legacy API.
type UserInfo struct {
	Name             string  `json:"Name"`
	RegistrationDate string  `json:"RegistrationDate"`
	CommentPoints    int     `json:"CommentPoints"`
	SubmissionPoints int     `json:"SubmissionPoints"`
	Badges           []Badge `json:"Badges,omitempty"`
}

// Badge is a badge as returned by the legacy API.
type Badge struct {
	BadgeID       string `json:"BadgeId"`
	BadgeTitle    string `json:"BadgeTitle"`
	BadgeGraphics string `json:"BadgeGraphics,omitempty"`
	Name          string `json:"Name,omitempty"`
}
