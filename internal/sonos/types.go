package sonos

// Tokens is the OAuth token response from the Sonos login service.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type householdsResponse struct {
	Households []household `json:"households"`
}

type household struct {
	ID string `json:"id"`
}

type groupsResponse struct {
	Groups []group `json:"groups"`
}

type group struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PlayerIDs     []string `json:"playerIds"`
	PlaybackState string   `json:"playbackState"`
}

type playbackMetadata struct {
	CurrentItem *queueItem `json:"currentItem"`
	Container   *container `json:"container"`
}

type queueItem struct {
	Track *track `json:"track"`
}

type track struct {
	Name           string  `json:"name"`
	ImageURL       string  `json:"imageUrl"`
	DurationMillis *int64  `json:"durationMillis"`
	Artist         *artist `json:"artist"`
	Album          *album  `json:"album"`
}

type artist struct {
	Name string `json:"name"`
}

type album struct {
	Name string `json:"name"`
}

type container struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type playbackStatus struct {
	PlaybackState  string `json:"playbackState"`
	PositionMillis *int64 `json:"positionMillis"`
}

// NowPlaying is the composed speaker status the dashboard renders.
type NowPlaying struct {
	Playing    bool   `json:"playing"`
	IsPlaying  bool   `json:"isPlaying"`
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	Image      string `json:"image,omitempty"`
	GroupName  string `json:"groupName,omitempty"`
	PositionMs *int64 `json:"positionMs"`
	DurationMs *int64 `json:"durationMs"`
}
