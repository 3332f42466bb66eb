// Command vincenty prints the geodesic distance in meters between two
// points on the WGS84 ellipsoid.
//
//	vincenty -lat1 42.3541165 -lon1 -71.0693514 -lat2 40.7791472 -lon2 -73.9680804
//
// Every flag can also be set with a VINCENTY_ prefixed environment variable,
// such as VINCENTY_LAT1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff"

	"github.com/tidwall/vincenty"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("vincenty", flag.ContinueOnError)
	var (
		lat1    = fs.Float64("lat1", 0, "latitude of the first point (degrees)")
		lon1    = fs.Float64("lon1", 0, "longitude of the first point (degrees)")
		lat2    = fs.Float64("lat2", 0, "latitude of the second point (degrees)")
		lon2    = fs.Float64("lon2", 0, "longitude of the second point (degrees)")
		verbose = fs.Bool("verbose", false, "log the inputs")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("VINCENTY")); err != nil {
		return err
	}

	l := &Logger{debug: *verbose}
	p1 := vincenty.GeoPoint{Latitude: *lat1, Longitude: *lon1}
	p2 := vincenty.GeoPoint{Latitude: *lat2, Longitude: *lon2}
	l.debugf("from %+v to %+v", p1, p2)

	d, err := vincenty.Distance(p1, p2)
	if err != nil {
		l.infof("%v", err)
		return err
	}
	fmt.Fprintf(stdout, "%.3f\n", d)
	return nil
}
