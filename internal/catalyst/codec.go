package catalyst

import (
	"encoding/json"
	"errors"
)

// The remote collection arrives in one of a few shapes depending on the
// deployment: a Catalyst envelope ({data:[{Events:{...}}]}), a plain data
// wrapper ({data:[...]}), a single wrapped record ({data:{Events:{...}}}), or
// a flat array. Each shape gets its own decoder and they are tried in order,
// so a new shape is a new entry here rather than a branch at every call site.

var errNoDecoder = errors.New("no decoder matched")

type listDecoder func([]byte) ([]*RemoteEvent, error)

var listDecoders = []listDecoder{
	decodeDataList,
	decodeSingleRecord,
	decodeFlatList,
}

func decodeEventList(body []byte) ([]*RemoteEvent, error) {
	for _, decode := range listDecoders {
		if events, err := decode(body); err == nil {
			return events, nil
		}
	}
	return nil, errNoDecoder
}

// recordItem is one collection entry, either wrapped under the record-type key
// ({"Events": {...}}) or a bare record.
type recordItem struct {
	Events *RemoteEvent `json:"Events"`
}

func decodeItem(raw json.RawMessage) (*RemoteEvent, error) {
	var wrapped recordItem
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Events != nil {
		return wrapped.Events, nil
	}
	var event RemoteEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// decodeDataList handles {data:[...]} with wrapped or bare items.
func decodeDataList(body []byte) ([]*RemoteEvent, error) {
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, errNoDecoder
	}
	return decodeItems(envelope.Data)
}

// decodeSingleRecord handles {data:{Events:{...}}} detail responses.
func decodeSingleRecord(body []byte) ([]*RemoteEvent, error) {
	var envelope struct {
		Data *recordItem `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil || envelope.Data.Events == nil {
		return nil, errNoDecoder
	}
	return []*RemoteEvent{envelope.Data.Events}, nil
}

// decodeFlatList handles a bare JSON array of records.
func decodeFlatList(body []byte) ([]*RemoteEvent, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}
	return decodeItems(items)
}

func decodeItems(items []json.RawMessage) ([]*RemoteEvent, error) {
	events := make([]*RemoteEvent, 0, len(items))
	for _, raw := range items {
		event, err := decodeItem(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
