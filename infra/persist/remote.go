package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// RemoteStore speaks the save-endpoint protocol: the whole state travels as
// one JSON string inside a small envelope.
//
//	save: POST {"action":"save","data":"<state json>"} -> {"success":bool}
//	load: GET  ?action=load                            -> {"success":bool,"data":"<state json>"}
type RemoteStore struct {
	url    string
	client *http.Client
}

// NewRemoteStore targets the given endpoint URL.
func NewRemoteStore(url string) *RemoteStore {
	return &RemoteStore{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type saveEnvelope struct {
	Action string `json:"action"`
	Data   string `json:"data"`
}

type saveResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
}

func (s *RemoteStore) Save(ctx context.Context, st model.GameState) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	body, err := json.Marshal(saveEnvelope{Action: "save", Data: string(blob)})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	var out saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !out.Success {
		return fmt.Errorf("%w: save rejected", ErrUnavailable)
	}
	return nil
}

func (s *RemoteStore) Load(ctx context.Context) (model.GameState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"?action=load", nil)
	if err != nil {
		return model.GameState{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return model.GameState{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return model.GameState{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	var out saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.GameState{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !out.Success || out.Data == "" {
		return model.GameState{}, ErrNoSave
	}
	var st model.GameState
	if err := json.Unmarshal([]byte(out.Data), &st); err != nil {
		return model.GameState{}, fmt.Errorf("parse save: %w", err)
	}
	return st, nil
}
