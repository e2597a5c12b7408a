package uber

import (
	"net/url"
	"strconv"
)

// Parameter sets required by the resource endpoints.
var (
	locationKeys = []string{"latitude", "longitude"}
	tripKeys     = []string{"start_latitude", "start_longitude", "end_latitude", "end_longitude"}
)

// requireParams reports ErrInvalidParameters unless every key is present
// with a non-empty value.
func requireParams(params url.Values, keys ...string) error {
	for _, k := range keys {
		if params.Get(k) == "" {
			return ErrInvalidParameters
		}
	}
	return nil
}

// LocationParams builds the parameters for a single point.
func LocationParams(latitude, longitude float64) url.Values {
	return url.Values{
		"latitude":  {formatCoord(latitude)},
		"longitude": {formatCoord(longitude)},
	}
}

// TripParams builds the parameters for a start and end point.
func TripParams(startLatitude, startLongitude, endLatitude, endLongitude float64) url.Values {
	return url.Values{
		"start_latitude":  {formatCoord(startLatitude)},
		"start_longitude": {formatCoord(startLongitude)},
		"end_latitude":    {formatCoord(endLatitude)},
		"end_longitude":   {formatCoord(endLongitude)},
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
