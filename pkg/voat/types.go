package voat

// ============================================================================
// Submission Types
// ============================================================================

// SubmissionType distinguishes self (text) posts from link posts.
type SubmissionType int

const (
	SubmissionTypeSelf SubmissionType = 1
	SubmissionTypeLink SubmissionType = 2
)

// Submission represents a submission as returned by the API.
type Submission struct {
	ID               int64          `json:"id"`
	UserName         string         `json:"userName"`
	Subverse         string         `json:"subverse"`
	Title            string         `json:"title"`
	Type             SubmissionType `json:"type"`
	URL              string         `json:"url,omitempty"`
	Content          string         `json:"content,omitempty"`
	FormattedContent string         `json:"formattedContent,omitempty"`
	Thumbnail        string         `json:"thumbnail,omitempty"`
	CommentCount     int            `json:"commentCount"`
	UpCount          int            `json:"upCount"`
	DownCount        int            `json:"downCount"`
	Views            int            `json:"views"`
	IsAdult          bool           `json:"isAdult"`
	IsAnonymized     bool           `json:"isAnonymized"`
	Date             string         `json:"date"`
	LastEditDate     string         `json:"lastEditDate,omitempty"`
}

// NewSubmission is the payload for creating a submission. Exactly one of URL
// or Content should be set; URL wins if both are present.
type NewSubmission struct {
	Title        string `json:"title"`
	URL          string `json:"url,omitempty"`
	Content      string `json:"content,omitempty"`
	IsAdult      bool   `json:"isAdult"`
	IsAnonymized bool   `json:"isAnonymized"`
}

// ============================================================================
// Comment Types
// ============================================================================

// Comment represents a comment as returned by the API.
type Comment struct {
	ID               int64  `json:"id"`
	ParentID         int64  `json:"parentID,omitempty"`
	SubmissionID     int64  `json:"submissionID"`
	Subverse         string `json:"subverse"`
	UserName         string `json:"userName"`
	Content          string `json:"content"`
	FormattedContent string `json:"formattedContent,omitempty"`
	ChildCount       int    `json:"childCount"`
	UpCount          int    `json:"upCount"`
	DownCount        int    `json:"downCount"`
	IsAnonymized     bool   `json:"isAnonymized"`
	Date             string `json:"date"`
	LastEditDate     string `json:"lastEditDate,omitempty"`
}

// CommentTree is the paged comment listing for a submission.
type CommentTree struct {
	// Comments are the comments at the requested level
	Comments []Comment `json:"comments"`

	// TotalCount is the total number of comments on the submission
	TotalCount int `json:"totalCount"`

	// StartingIndex is the index the listing started from
	StartingIndex int `json:"startingIndex"`
}

// ============================================================================
// Subverse Types
// ============================================================================

// Subverse holds the sidebar information for a subverse.
type Subverse struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Sidebar         string `json:"sidebar,omitempty"`
	Type            string `json:"type,omitempty"`
	SubscriberCount int    `json:"subscriberCount"`
	RatedAdult      bool   `json:"ratedAdult"`
	CreationDate    string `json:"creationDate"`
}

// ============================================================================
// User Types
// ============================================================================

// UserInfo holds the public profile of a user.
type UserInfo struct {
	UserName         string  `json:"userName"`
	RegistrationDate string  `json:"registrationDate"`
	Bio              string  `json:"bio,omitempty"`
	ProfilePicture   string  `json:"profilePicture,omitempty"`
	CommentPoints    Score   `json:"commentPoints"`
	SubmissionPoints Score   `json:"submissionPoints"`
	CommentVoting    Score   `json:"commentVoting"`
	SubmissionVoting Score   `json:"submissionVoting"`
	Badges           []Badge `json:"badges,omitempty"`
}

// Score is an up/down vote tally.
type Score struct {
	Sum       int `json:"sum"`
	UpCount   int `json:"upCount"`
	DownCount int `json:"downCount"`
}

// Badge is a decoration on a user profile.
type Badge struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Graphic string `json:"graphic,omitempty"`
}

// Subscription is a user's subscription to a subverse or set.
type Subscription struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// SavedItem is an entry in the user's saved items collection. Exactly one of
// Submission or Comment is set.
type SavedItem struct {
	Submission *Submission `json:"submission,omitempty"`
	Comment    *Comment    `json:"comment,omitempty"`
}

// ============================================================================
// Preferences
// ============================================================================

// Preferences holds the account preferences. Pointer fields distinguish
// "leave unchanged" from an explicit false/zero when updating.
type Preferences struct {
	DisableCSS                   *bool   `json:"disableCSS,omitempty"`
	NightMode                    *bool   `json:"nightMode,omitempty"`
	Language                     *string `json:"language,omitempty"`
	OpenInNewWindow              *bool   `json:"openInNewWindow,omitempty"`
	EnableAdultContent           *bool   `json:"enableAdultContent,omitempty"`
	PubliclyDisplayVotes         *bool   `json:"publiclyDisplayVotes,omitempty"`
	PubliclyDisplaySubscriptions *bool   `json:"publiclyDisplaySubscriptions,omitempty"`
	BlockAnonymized              *bool   `json:"blockAnonymized,omitempty"`
	CollapseCommentLimit         *int    `json:"collapseCommentLimit,omitempty"`
}

// ============================================================================
// Message Types
// ============================================================================

// MessageType selects which mailbox to list.
type MessageType string

const (
	MessageTypeInbox      MessageType = "inbox"
	MessageTypeSent       MessageType = "sent"
	MessageTypeComment    MessageType = "comment"
	MessageTypeSubmission MessageType = "submission"
	MessageTypeMention    MessageType = "mention"
	MessageTypeAll        MessageType = "all"
)

// MessageState filters messages by read state.
type MessageState string

const (
	MessageStateUnread MessageState = "unread"
	MessageStateRead   MessageState = "read"
	MessageStateAll    MessageState = "all"
)

// Message is a private message or notification.
type Message struct {
	ID               int64  `json:"id"`
	CommentID        int64  `json:"commentID,omitempty"`
	SubmissionID     int64  `json:"submissionID,omitempty"`
	Subverse         string `json:"subverse,omitempty"`
	Sender           string `json:"sender"`
	Recipient        string `json:"recipient"`
	Subject          string `json:"subject,omitempty"`
	Content          string `json:"content"`
	FormattedContent string `json:"formattedContent,omitempty"`
	Type             string `json:"type"`
	Unread           bool   `json:"unread"`
	SentDate         string `json:"sentDate"`
}

// NewMessage is the payload for sending a private message.
type NewMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// ============================================================================
// Vote Types
// ============================================================================

// VoteTarget selects what kind of content a vote applies to.
type VoteTarget string

const (
	VoteTargetSubmission VoteTarget = "submission"
	VoteTargetComment    VoteTarget = "comment"
)

// VoteResult reports the outcome of a vote.
type VoteResult struct {
	// RecordedValue is the vote value the server recorded
	RecordedValue int `json:"recordedValue"`

	// Result is the server's status code for the operation
	Result int `json:"result"`

	// Message is an optional explanation (e.g. why a vote was ignored)
	Message string `json:"message,omitempty"`
}

// ============================================================================
// System Types
// ============================================================================

// SystemStatus is the operational state of the API.
type SystemStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SystemTime is the server clock. Use it to compute offsets against local
// time.
type SystemTime struct {
	UTC   string `json:"utc"`
	Local string `json:"local,omitempty"`
}
