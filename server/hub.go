package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"

	"fourier/material"
	"fourier/model"
	"fourier/simulation"
)

// Hub serves one websocket connection. Its input is only touched by
// handleRequest and the connection is only written by handleResponse.
type Hub struct {
	id        string
	sim       *simulation.Simulation
	materials *material.Properties
	input     model.Input
	conn      *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(sim *simulation.Simulation, materials *material.Properties, defaults model.Input) *Hub {
	return &Hub{
		id:        xid.New().String(),
		sim:       sim,
		materials: materials,
		input:     defaults,
		msg:       make(chan model.Msg, 10),
		reply:     make(chan model.Msg, 10),
		done:      make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.dispatch(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("session", h.id).WithError(err).Warn("write reply")
				continue
			}
			if reply.Type == model.MsgStopped {
				_ = h.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stopped"))
				_ = h.conn.Close()
			}
		case <-h.done:
			return
		}
	}
}

// dispatch answers a single request.
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgEnv:
		in := h.input
		if err := json.Unmarshal([]byte(msg.Content), &in); err != nil {
			return errorMsg(fmt.Errorf("bad env: %w", err))
		}
		h.input = in
		log.WithFields(log.Fields{
			"session":   h.id,
			"material":  in.Material,
			"area":      in.Area,
			"length":    in.Length,
			"hot_temp":  in.HotTemp,
			"cold_temp": in.ColdTemp,
		}).Info("env set")
		return model.Msg{Type: model.MsgEnvSet, Content: "env is set"}
	case model.MsgStart:
		o, err := h.sim.Run(h.input)
		if err != nil {
			return errorMsg(err)
		}
		return jsonMsg(model.MsgResult, o.Reply())
	case model.MsgMaterials:
		return jsonMsg(model.MsgMaterials, h.materials.List())
	case model.MsgStop:
		return model.Msg{Type: model.MsgStopped, Content: "stopped"}
	default:
		log.WithFields(log.Fields{
			"session": h.id,
			"type":    msg.Type,
		}).Warn("no such type")
		return errorMsg(fmt.Errorf("no such type %q", msg.Type))
	}
}

func jsonMsg(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.MsgError, Content: err.Error()}
}
