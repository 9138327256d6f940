package bus

// Prediction is one upcoming arrival at a stop, with CTA Bus Tracker's own
// field names so the dashboard sees the shape it already knows.
type Prediction struct {
	Timestamp   string `json:"tmstmp,omitempty"`
	Type        string `json:"typ,omitempty"`
	StopID      string `json:"stpid"`
	StopName    string `json:"stpnm"`
	VehicleID   string `json:"vid,omitempty"`
	Route       string `json:"rt"`
	Direction   string `json:"rtdir,omitempty"`
	Destination string `json:"des"`
	Predicted   string `json:"prdtm"`
	Countdown   string `json:"prdctdn,omitempty"`
	TripID      string `json:"tatripid,omitempty"`
	Delayed     bool   `json:"dly"`
}

// Direction is one travel direction a route serves.
type Direction struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Stop identifies a stop along a route and direction.
type Stop struct {
	StopID   string  `json:"stpid"`
	StopName string  `json:"stpnm"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
}

// envelope wraps the Bus Tracker response root. The v3 API documents a
// hyphenated root key but deployments have been seen with an underscore
// variant, so both are tolerated.
type envelope struct {
	Hyphen     *responseBody `json:"bustime-response"`
	Underscore *responseBody `json:"bustime_response"`
}

func (e envelope) body() *responseBody {
	if e.Hyphen != nil {
		return e.Hyphen
	}
	return e.Underscore
}

type responseBody struct {
	Predictions []Prediction   `json:"prd"`
	Directions  []Direction    `json:"directions"`
	Stops       []Stop         `json:"stops"`
	Errors      []upstreamFail `json:"error"`
}

type upstreamFail struct {
	Route   string `json:"rt,omitempty"`
	StopID  string `json:"stpid,omitempty"`
	Message string `json:"msg"`
}

// firstError returns the first embedded error message, or "".
func (b *responseBody) firstError() string {
	if b == nil || len(b.Errors) == 0 {
		return ""
	}
	return b.Errors[0].Message
}
