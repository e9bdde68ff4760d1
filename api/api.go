package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-tools/api/model"
	"github.com/a-bouts/nav-tools/land"
	"github.com/a-bouts/nav-tools/latlon"
	"github.com/a-bouts/nav-tools/route"
	"github.com/a-bouts/nav-tools/voyage"
	"github.com/a-bouts/nav-tools/xmpp"
)

const (
	geojsonFormat      = "geojson"
	jsonContentType    = "application/json"
	geojsonContentType = "application/geo+json"
)

// Voyages are the named voyages served under /voyages.
type Voyages interface {
	Names() []string
	Get(name string) (voyage.Voyage, error)
}

type server struct {
	cpuprofile bool
	mask       route.Mask
	voyages    Voyages
	x          *xmpp.Xmpp
}

// InitServer builds the router. l and x may be nil.
func InitServer(cpuprofile bool, l *land.Land, v Voyages, x *xmpp.Xmpp) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)
	router.Use(instrument)

	s := server{cpuprofile: cpuprofile,
		voyages: v,
		x:       x,
	}
	if l != nil {
		s.mask = l
	}

	router.HandleFunc("/nav/-/healthz", s.healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/nav/api/v1").Subrouter()
	apiV1.HandleFunc("/orthodrome", s.orthodrome).Methods(http.MethodPost)
	apiV1.HandleFunc("/loxodrome", s.loxodrome).Methods(http.MethodPost)
	apiV1.HandleFunc("/loxodrome/destination", s.destination).Methods(http.MethodPost)
	apiV1.HandleFunc("/distance", s.distance).Methods(http.MethodPost)
	apiV1.HandleFunc("/path", s.path).Methods(http.MethodPost)
	apiV1.HandleFunc("/route", s.route).Methods(http.MethodPost)
	apiV1.HandleFunc("/position", s.position).Methods(http.MethodPost)
	apiV1.HandleFunc("/voyages", s.getVoyages).Methods(http.MethodGet)
	apiV1.HandleFunc("/voyages/{name}/route", s.voyageRoute).Methods(http.MethodGet)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func requestLogger(req *http.Request, action string) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

// write encodes v before the header goes out. An unencodable v is a 500.
func write(w http.ResponseWriter, l *log.Entry, contentType string, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		l.WithError(err).Error("Cannot encode response")
		status = http.StatusInternalServerError
		contentType = jsonContentType
		b, _ = json.Marshal(model.Error{Error: err.Error()})
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
}

func writeJSON(w http.ResponseWriter, l *log.Entry, status int, v interface{}) {
	write(w, l, jsonContentType, status, v)
}

func writeGeoJSON(w http.ResponseWriter, l *log.Entry, navs route.Navs) {
	write(w, l, geojsonContentType, http.StatusOK, route.FeatureCollection(navs))
}

func writeError(w http.ResponseWriter, l *log.Entry, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, latlon.ErrInvalidInput), errors.Is(err, latlon.ErrInvalidOrientation):
		status = http.StatusBadRequest
	case errors.Is(err, voyage.ErrNotFound):
		status = http.StatusNotFound
	}

	l.WithError(err).WithField("status", status).Warn("Request rejected")
	writeJSON(w, l, status, model.Error{Error: err.Error()})
}

func decode(req *http.Request, v interface{}) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", latlon.ErrInvalidInput, err)
	}
	return nil
}

func (s *server) orthodrome(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "orthodrome")

	var p model.Pair
	if err := decode(req, &p); err != nil {
		writeError(w, l, err)
		return
	}

	o := latlon.LatLonOrthodrome{}.Solve(p.From, p.To)
	l.Debugf("Orthodrome %v -> %v : %.2fnm %.1f°", p.From, p.To, o.Distance, o.Course)

	writeJSON(w, l, http.StatusOK, o)
}

func (s *server) loxodrome(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "loxodrome")

	var p model.Pair
	if err := decode(req, &p); err != nil {
		writeError(w, l, err)
		return
	}

	lox := latlon.LatLonLoxodrome{}.Solve(p.From, p.To)
	l.Debugf("Loxodrome %v -> %v : %.2fnm %.1f°", p.From, p.To, lox.Distance, lox.Course)

	writeJSON(w, l, http.StatusOK, lox)
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "destination")

	var d model.Destination
	if err := decode(req, &d); err != nil {
		writeError(w, l, err)
		return
	}

	writeJSON(w, l, http.StatusOK, latlon.LatLonLoxodrome{}.Destination(d.From, d.Course, d.Distance))
}

var methods = map[string]latlon.LatLonInterface{
	"orthodrome": latlon.LatLonOrthodrome{},
	"loxodrome":  latlon.LatLonLoxodrome{},
	"haversine":  latlon.LatLonHaversine{},
}

func (s *server) distance(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "distance")

	method := req.URL.Query().Get("method")
	if method == "" {
		method = "orthodrome"
	}
	m, ok := methods[method]
	if !ok {
		writeError(w, l, fmt.Errorf("%w: unknown method %q", latlon.ErrInvalidInput, method))
		return
	}

	var p model.Pair
	if err := decode(req, &p); err != nil {
		writeError(w, l, err)
		return
	}

	d, c := m.DistanceAndBearingTo(p.From, p.To)
	writeJSON(w, l, http.StatusOK, model.Distance{Method: method, Distance: d, Course: c})
}

func (s *server) path(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "path")

	var p model.Path
	if err := decode(req, &p); err != nil {
		writeError(w, l, err)
		return
	}

	if req.URL.Query().Get("format") == geojsonFormat {
		nav, err := route.Plan(p.From, p.To, p.Step, s.mask)
		if err != nil {
			writeError(w, l, err)
			return
		}
		writeGeoJSON(w, l, route.Navs{Sumup: nav.Sumup, Navs: []route.Nav{nav}})
		return
	}

	pts, err := latlon.LatLonOrthodrome{}.Path(p.From, p.To, p.Step)
	if err != nil {
		writeError(w, l, err)
		return
	}

	writeJSON(w, l, http.StatusOK, pts)
}

func (s *server) route(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start(profile.NoShutdownHook).Stop()
	}

	l := requestLogger(req, "route")

	var r model.Route
	if err := decode(req, &r); err != nil {
		writeError(w, l, err)
		return
	}
	if r.Step == 0 {
		r.Step = voyage.DefaultStep
	}
	if len(r.Waypoints) == 0 && len(r.Points) > 0 {
		pts, err := latlon.Positions(r.Points)
		if err != nil {
			writeError(w, l, err)
			return
		}
		r.Waypoints = pts
	}

	l.Infof("Route through %d waypoints every '%.2f'", len(r.Waypoints), r.Step)

	start := time.Now()

	navs, err := route.PlanVoyage(r.Waypoints, r.Step, s.mask)
	if err != nil {
		writeError(w, l, err)
		return
	}

	delta := time.Now().Sub(start)
	l.Infof("Route took %s", delta.String())

	s.notify(l, summary(r.Waypoints, navs))

	if req.URL.Query().Get("format") == geojsonFormat {
		writeGeoJSON(w, l, navs)
		return
	}
	writeJSON(w, l, http.StatusOK, navs)
}

func summary(waypoints []latlon.LatLon, navs route.Navs) string {
	first := waypoints[0]
	last := waypoints[len(waypoints)-1]
	return fmt.Sprintf("Route %.4f,%.4f -> %.4f,%.4f : orthodrome %.1fnm, loxodrome %.1fnm, saving %.1fnm",
		first.Lat, first.Lon, last.Lat, last.Lon, navs.Sumup.Orthodrome, navs.Sumup.Loxodrome, navs.Sumup.Saving)
}

func (s *server) notify(l *log.Entry, message string) {
	if s.x == nil || !s.x.Enabled() {
		return
	}
	go func() {
		if err := s.x.Send(message); err != nil {
			l.WithError(err).Warn("Route summary not sent")
		}
	}()
}

func (s *server) position(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "position")

	var p latlon.NavPosition
	if err := decode(req, &p); err != nil {
		writeError(w, l, err)
		return
	}

	pos, err := p.Position()
	if err != nil {
		writeError(w, l, err)
		return
	}

	writeJSON(w, l, http.StatusOK, pos)
}

func (s *server) getVoyages(w http.ResponseWriter, req *http.Request) {
	l := requestLogger(req, "voyages")

	writeJSON(w, l, http.StatusOK, s.voyages.Names())
}

func (s *server) voyageRoute(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]
	l := requestLogger(req, "voyage").WithField("voyage", name)

	v, err := s.voyages.Get(name)
	if err != nil {
		writeError(w, l, err)
		return
	}

	navs, err := v.Plan(s.mask)
	if err != nil {
		writeError(w, l, err)
		return
	}

	l.Infof("Voyage '%s' : %d legs, %.1fnm", name, len(navs.Navs), navs.Sumup.Orthodrome)

	if req.URL.Query().Get("format") == geojsonFormat {
		writeGeoJSON(w, l, navs)
		return
	}
	writeJSON(w, l, http.StatusOK, navs)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
