package parsers

import (
	"korea-realestate/models"
)

func isSuccessCode(code string) bool {
	return code == "00" || code == "000"
}

// ListPage is the item list and count of a data.go.kr style response.
type ListPage struct {
	Items      []models.Item
	TotalCount int
}

// ExtractListItems unwraps {response: {header, body: {items: {item}}}}.
// A non-success header code is an api_error; any other shape mismatch is a
// parse_error. An empty items value means zero rows.
func ExtractListItems(payload any) (ListPage, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return ListPage{}, models.NewParseError("response is not a JSON object")
	}
	if resp, ok := root["response"].(map[string]any); ok {
		root = resp
	} else if _, has := root["body"]; !has {
		return ListPage{}, models.NewParseError("response envelope is missing")
	}

	if header, ok := root["header"].(map[string]any); ok {
		code := Str(header["resultCode"])
		if code != "" && !isSuccessCode(code) {
			return ListPage{}, models.NewAPIError(code, "%s", upstreamMessage(header))
		}
	}

	body, ok := root["body"].(map[string]any)
	if !ok {
		return ListPage{}, models.NewParseError("response body is missing")
	}

	raw, has := body["items"]
	if !has {
		return ListPage{}, models.NewParseError("response body has no items")
	}
	items, err := itemList(raw)
	if err != nil {
		return ListPage{}, err
	}
	return ListPage{Items: items, TotalCount: CoerceInt(body["totalCount"])}, nil
}

// ExtractOnbid unwraps an auction response. The embedded result code is
// checked before the body is trusted.
func ExtractOnbid(payload any) (ListPage, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return ListPage{}, models.NewParseError("response is not a JSON object")
	}
	if resp, ok := root["response"].(map[string]any); ok {
		root = resp
	}

	code := ""
	if header, ok := root["header"].(map[string]any); ok {
		code = Str(header["resultCode"])
	} else {
		code = Str(root["resultCode"])
	}
	if code != "" && !isSuccessCode(code) {
		return ListPage{}, models.NewAPIError(code, "Onbid API error")
	}

	body, ok := root["body"].(map[string]any)
	if !ok {
		return ListPage{}, models.NewParseError("auction response body is missing")
	}
	items, err := itemList(body["items"])
	if err != nil {
		return ListPage{}, err
	}
	return ListPage{Items: items, TotalCount: CoerceInt(body["totalCount"])}, nil
}

// itemList accepts {item: [...]}, {item: {...}}, a bare list, or an empty
// value.
func itemList(raw any) ([]models.Item, error) {
	switch v := raw.(type) {
	case nil:
		return []models.Item{}, nil
	case string:
		if v == "" {
			return []models.Item{}, nil
		}
		return nil, models.NewParseError("unexpected items value: %q", v)
	case []any:
		return toItems(v), nil
	case map[string]any:
		switch inner := v["item"].(type) {
		case nil:
			return []models.Item{}, nil
		case []any:
			return toItems(inner), nil
		case map[string]any:
			return []models.Item{inner}, nil
		}
		return nil, models.NewParseError("items.item is neither a list nor an object")
	}
	return nil, models.NewParseError("items is neither a list nor an object")
}

func toItems(list []any) []models.Item {
	items := make([]models.Item, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

func upstreamMessage(header map[string]any) string {
	if msg := Str(header["resultMsg"]); msg != "" {
		return msg
	}
	return "upstream returned a non-success result code"
}

// OdcloudPage is the paging wrapper of the subscription endpoints.
type OdcloudPage struct {
	Items      []models.Item
	Page       int
	PerPage    int
	TotalCount int
}

// ParseOdcloudPage unwraps {page, perPage, totalCount, data: [...]}.
// Counters are coerced since upstream may send them as strings.
func ParseOdcloudPage(payload any) (OdcloudPage, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return OdcloudPage{}, models.NewParseError("response is not a JSON object")
	}

	// Gateway errors come back as {code: -4, msg: "..."}.
	if code := CoerceInt(root["code"]); code < 0 {
		msg := Str(root["msg"])
		if msg == "" {
			msg = "subscription API error"
		}
		return OdcloudPage{}, models.NewAPIError(Str(root["code"]), "%s", msg)
	}

	raw, has := root["data"]
	if !has {
		return OdcloudPage{}, models.NewParseError("response has no data list")
	}
	var items []models.Item
	switch v := raw.(type) {
	case nil:
		items = []models.Item{}
	case []any:
		items = toItems(v)
	default:
		return OdcloudPage{}, models.NewParseError("data is not a list")
	}

	return OdcloudPage{
		Items:      items,
		Page:       CoerceInt(root["page"]),
		PerPage:    CoerceInt(root["perPage"]),
		TotalCount: CoerceInt(root["totalCount"]),
	}, nil
}
