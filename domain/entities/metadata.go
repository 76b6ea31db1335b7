package entities

import "bikeshare/domain/entities/filter"

// Metadata this struct will contain extra information about the statistics computed for a filtered set
// + City: city which belongs the data
// + Month: month selector used to filter the data
// + Day: day selector used to filter the data
// + Type: this field helps us to recognize which calculator produced the data
// + Trips: amount of trips analyzed
type Metadata struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Type  string `json:"type"`
	Trips int    `json:"trips"`
}

func NewMetadata(dataFilter filter.Filter, dataType string, trips int) Metadata {
	return Metadata{
		City:  dataFilter.City,
		Month: dataFilter.Month,
		Day:   dataFilter.Day,
		Type:  dataType,
		Trips: trips,
	}
}

func (m Metadata) GetType() string {
	return m.Type
}
