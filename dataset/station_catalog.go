package dataset

import (
	"fmt"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset/config"
	"bikeshare/domain/entities/station"
	"bikeshare/utils"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// LoadStationCatalogs reads the station catalog of every city that has one configured
func LoadStationCatalogs(datasetConfig *config.DatasetConfig) (map[string]station.Catalog, error) {
	catalogs := make(map[string]station.Catalog)
	for city, filename := range datasetConfig.StationsData {
		catalog, err := LoadStationCatalog(filepath.Join(datasetConfig.DataDir, filename))
		if err != nil {
			return nil, fmt.Errorf("[city: %s] %w", city, err)
		}

		log.Debugf("[component: %s][city: %s][status: OK] %v stations loaded", loaderType, city, len(catalog))
		catalogs[city] = catalog
	}
	return catalogs, nil
}

// LoadStationCatalog reads a csv file with name, latitude and longitude columns
func LoadStationCatalog(catalogFilepath string) (station.Catalog, error) {
	frame, err := readDataFrame(catalogFilepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadStations, err)
	}

	names := frame.Names()
	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if !utils.ContainsString(column, names) {
			return nil, fmt.Errorf("%w: %w: %q", ErrReadStations, ErrMissingColumn, column)
		}
	}

	stationNames := frame.Col(stationNameColumn).Records()
	latitudes := frame.Col(stationLatitudeColumn).Records()
	longitudes := frame.Col(stationLongitudeColumn).Records()

	catalog := make(station.Catalog, len(stationNames))
	for idx, name := range stationNames {
		latitude, err := strconv.ParseFloat(latitudes[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: latitude %q", ErrInvalidCoordinate, idx+1, latitudes[idx])
		}

		longitude, err := strconv.ParseFloat(longitudes[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: longitude %q", ErrInvalidCoordinate, idx+1, longitudes[idx])
		}

		catalog[name] = station.StationData{
			Name:      name,
			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	return catalog, nil
}
