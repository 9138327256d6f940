package train

import "encoding/json"

// Arrival is one predicted train arrival at a station, in the camelCase
// shape the dashboard consumes.
type Arrival struct {
	StationID   string `json:"staId"`
	StopID      string `json:"stpId"`
	StopDesc    string `json:"stpDe"`
	StationName string `json:"staNm"`
	RunNumber   string `json:"rn"`
	Destination string `json:"destNm"`
	ArrivalTime string `json:"arrT"`
	Approaching bool   `json:"isApp"`
	Delayed     bool   `json:"isDly"`
}

// envelope wraps the Train Tracker "ctatt" response root.
type envelope struct {
	Ctatt *ctattBody `json:"ctatt"`
}

type ctattBody struct {
	Timestamp string          `json:"tmst"`
	ErrorCode string          `json:"errCd"`
	ErrorName string          `json:"errNm"`
	RawETA    json.RawMessage `json:"eta"`
}

// eta is the upstream arrival entry. Train Tracker encodes booleans as the
// strings "0"/"1".
type eta struct {
	StationID   string `json:"staId"`
	StopID      string `json:"stpId"`
	StopDesc    string `json:"stpDe"`
	StationName string `json:"staNm"`
	RunNumber   string `json:"rn"`
	Destination string `json:"destNm"`
	ArrivalTime string `json:"arrT"`
	IsApp       string `json:"isApp"`
	IsDly       string `json:"isDly"`
}

// etas decodes the eta payload, tolerating both a list and the single-object
// form the API emits when exactly one arrival is pending.
func (b *ctattBody) etas() []eta {
	if b == nil || len(b.RawETA) == 0 {
		return nil
	}

	var many []eta
	if err := json.Unmarshal(b.RawETA, &many); err == nil {
		return many
	}

	var one eta
	if err := json.Unmarshal(b.RawETA, &one); err == nil {
		return []eta{one}
	}
	return nil
}

func mapArrival(e eta) Arrival {
	return Arrival{
		StationID:   e.StationID,
		StopID:      e.StopID,
		StopDesc:    e.StopDesc,
		StationName: e.StationName,
		RunNumber:   e.RunNumber,
		Destination: e.Destination,
		ArrivalTime: e.ArrivalTime,
		Approaching: e.IsApp == "1",
		Delayed:     e.IsDly == "1",
	}
}
