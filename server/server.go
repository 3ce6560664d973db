package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"fourier/material"
	"fourier/model"
	"fourier/simulation"
)

type Server struct {
	addr      string
	upgrader  websocket.Upgrader
	sim       *simulation.Simulation
	materials *material.Properties
	defaults  model.Input
	router    *mux.Router
}

// NewServer serves evaluations of sim. Every websocket connection starts
// from the defaults input.
func NewServer(addr string, upgrader websocket.Upgrader, sim *simulation.Simulation,
	materials *material.Properties, defaults model.Input) *Server {
	s := &Server{
		addr:      addr,
		upgrader:  upgrader,
		sim:       sim,
		materials: materials,
		defaults:  defaults,
	}

	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWs)
	r.HandleFunc("/materials", s.serveMaterials).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(s.sim, s.materials, s.defaults)
	hub.conn = conn
	log.WithFields(log.Fields{
		"session": hub.id,
		"remote":  r.RemoteAddr,
	}).Info("session opened")

	go hub.handleRequest()
	go hub.handleResponse()
	defer close(hub.done)

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithField("session", hub.id).WithError(err).Debug("read stopped")
			}
			log.WithField("session", hub.id).Info("session closed")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) serveMaterials(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.materials.List()); err != nil {
		log.WithError(err).Warn("write materials")
	}
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("listening")
	return http.ListenAndServe(s.addr, s.router)
}
