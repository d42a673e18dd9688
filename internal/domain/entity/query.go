package entity

type originKind int

const (
	originSingle originKind = iota
	originAllHubs
)

// Origin is either a single departure city or the "везде" (everywhere)
// sentinel that fans out over the fixed hub set. Modelled as a tagged value
// so the rest of the pipeline never compares magic strings.
type Origin struct {
	kind originKind
	code string
}

// SingleOrigin builds an origin for one resolved IATA code.
func SingleOrigin(code string) Origin {
	return Origin{kind: originSingle, code: code}
}

// AllHubs builds the "everywhere" origin.
func AllHubs() Origin {
	return Origin{kind: originAllHubs}
}

// IsEverywhere reports whether this origin fans out over the hub set.
func (o Origin) IsEverywhere() bool {
	return o.kind == originAllHubs
}

// IATACode returns the single origin code; empty for the everywhere variant.
func (o Origin) IATACode() string {
	return o.code
}

// Codes returns the origin codes to query: the single code, or the supplied
// hub set for the everywhere variant.
func (o Origin) Codes(hubs []string) []string {
	if o.kind == originAllHubs {
		return hubs
	}
	return []string{o.code}
}

// FlightQuery is one fully parsed user request. Dates keep the user's
// "ДД.ММ" form; API-facing normalization happens at the gateway boundary.
type FlightQuery struct {
	Origin      Origin
	OriginName  string
	Destination string
	DestName    string
	DepartDate  string
	ReturnDate  string
	Passengers  PassengerComposition
}

// IsRoundTrip reports whether a return date was requested.
func (q *FlightQuery) IsRoundTrip() bool {
	return q.ReturnDate != ""
}
