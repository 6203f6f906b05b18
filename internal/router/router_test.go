package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutricat/internal/router"
)

func TestHTTP_EndToEnd_DailyLoop(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	// 1) Primer dashboard crea el gato con defaults
	{
		st, body := doReq(t, ts.URL, "GET", "/api/dashboard", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var out struct {
			Cat struct {
				Name   string `json:"name"`
				Level  int    `json:"level"`
				Energy int    `json:"energy"`
			} `json:"cat"`
		}
		mustUnmarshal(t, body, &out)
		if out.Cat.Name != "Snowy" || out.Cat.Level != 1 || out.Cat.Energy != 60 {
			t.Fatalf("unexpected default cat: %+v", out.Cat)
		}
	}

	// 2) Sin auth header => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/dashboard", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without auth, got %d", st)
		}
	}

	// 3) Tres aguas: contador diario sube, energía acotada
	var afterWater struct {
		Success bool `json:"success"`
		Cat     struct {
			Energy          int `json:"energy"`
			Exp             int `json:"exp"`
			DailyWaterCount int `json:"dailyWaterCount"`
		} `json:"cat"`
	}
	for i := 0; i < 3; i++ {
		st, body := doReq(t, ts.URL, "POST", "/api/water", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 water, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &afterWater)
	}
	if !afterWater.Success || afterWater.Cat.DailyWaterCount != 3 {
		t.Fatalf("expected dailyWaterCount=3, got %+v", afterWater)
	}
	if afterWater.Cat.Energy != 90 || afterWater.Cat.Exp != 15 {
		t.Fatalf("expected energy=90 exp=15 after 3 waters, got %+v", afterWater.Cat)
	}

	// 4) La quest de hidratación quedó claimable
	{
		st, body := doReq(t, ts.URL, "GET", "/api/quests", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 quests, got %d body=%s", st, string(body))
		}
		var quests []struct {
			ID       string `json:"id"`
			Status   string `json:"status"`
			Progress int    `json:"progress"`
		}
		mustUnmarshal(t, body, &quests)
		if len(quests) != 3 {
			t.Fatalf("expected 3 quests, got %d", len(quests))
		}
		for _, q := range quests {
			if q.ID == "water" && (q.Status != "claimable" || q.Progress != 3) {
				t.Fatalf("expected water quest claimable with progress 3, got %+v", q)
			}
		}
	}

	// 5) Cobra la quest de agua: +20 monedas
	{
		st, body := doReq(t, ts.URL, "POST", "/api/quests/claim", ownerID, map[string]any{
			"questId": "water",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 claim, got %d body=%s", st, string(body))
		}
		var out struct {
			Success bool `json:"success"`
			Cat     struct {
				Coins int `json:"coins"`
			} `json:"cat"`
		}
		mustUnmarshal(t, body, &out)
		if !out.Success || out.Cat.Coins != 20 {
			t.Fatalf("expected 20 coins after water claim, got %+v", out)
		}
	}

	// 6) Segundo claim del mismo día => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/quests/claim", ownerID, map[string]any{
			"questId": "water",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second claim, got %d", st)
		}
	}

	// 7) Quest no completada => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/quests/claim", ownerID, map[string]any{
			"questId": "meal",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on incomplete quest, got %d", st)
		}
	}

	// 8) Registra una comida alta en calorías y proteína
	{
		st, body := doReq(t, ts.URL, "POST", "/api/diet", ownerID, map[string]any{
			"foodName": "Braised Pork",
			"calories": 500,
			"protein":  15,
			"carbs":    5,
			"fat":      40,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 diet, got %d body=%s", st, string(body))
		}
		var out struct {
			Cat struct {
				Energy     int     `json:"energy"`
				Weight     float64 `json:"weight"`
				FurQuality int     `json:"furQuality"`
			} `json:"cat"`
		}
		mustUnmarshal(t, body, &out)
		// 90 + 30 acota en 100; 1.0 + 0.1; 80 + 2.
		if out.Cat.Energy != 100 || out.Cat.FurQuality != 82 {
			t.Fatalf("unexpected cat after meal: %+v", out.Cat)
		}
	}

	// 9) Sin calories => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/diet", ownerID, map[string]any{
			"foodName": "Mystery",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without calories, got %d", st)
		}
	}

	// 10) La quest de comida ya se puede cobrar
	{
		st, body := doReq(t, ts.URL, "POST", "/api/quests/claim", ownerID, map[string]any{
			"questId": "meal",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 meal claim, got %d body=%s", st, string(body))
		}
	}

	// 11) Compra comida en la tienda (20+30=50 monedas disponibles)
	var inventoryID string
	{
		st, body := doReq(t, ts.URL, "POST", "/api/shop/buy", ownerID, map[string]any{
			"itemId": "dried_fish",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 buy, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/api/inventory", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 inventory, got %d body=%s", st, string(body))
		}
		var inv []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
			Item     struct {
				ID string `json:"id"`
			} `json:"item"`
		}
		mustUnmarshal(t, body, &inv)
		if len(inv) != 1 || inv[0].Item.ID != "dried_fish" || inv[0].Quantity != 1 {
			t.Fatalf("unexpected inventory: %+v", inv)
		}
		inventoryID = inv[0].ID
	}

	// 12) Comprar sin fondos => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/shop/buy", ownerID, map[string]any{
			"itemId": "crown",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 insufficient funds, got %d", st)
		}
	}

	// 13) Usa la comida comprada: se consume la entrada
	{
		st, body := doReq(t, ts.URL, "POST", "/api/inventory/use", ownerID, map[string]any{
			"inventoryId": inventoryID,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 use, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/api/inventory", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 inventory, got %d body=%s", st, string(body))
		}
		var inv []struct{ ID string }
		mustUnmarshal(t, body, &inv)
		if len(inv) != 0 {
			t.Fatalf("expected empty inventory after use, got %+v", inv)
		}
	}

	// 14) Leaderboard incluye al gato
	{
		st, body := doReq(t, ts.URL, "GET", "/api/leaderboard", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 leaderboard, got %d body=%s", st, string(body))
		}
		var entries []struct {
			Rank  int    `json:"rank"`
			Owner string `json:"owner"`
		}
		mustUnmarshal(t, body, &entries)
		if len(entries) != 1 || entries[0].Owner != ownerID || entries[0].Rank != 1 {
			t.Fatalf("unexpected leaderboard: %+v", entries)
		}
	}

	// 15) Reporte semanal con los registros de hoy
	{
		st, body := doReq(t, ts.URL, "GET", "/api/report/weekly", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 report, got %d body=%s", st, string(body))
		}
		var out struct {
			Score       int `json:"score"`
			RecordCount int `json:"recordCount"`
		}
		mustUnmarshal(t, body, &out)
		if out.RecordCount != 1 || out.Score <= 0 {
			t.Fatalf("unexpected weekly report: %+v", out)
		}
	}

	// 16) Reconocimiento mock devuelve un plato del catálogo
	{
		st, body := doReq(t, ts.URL, "POST", "/api/recognize", ownerID, map[string]any{
			"image": "data:image/png;base64,xxxx",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 recognize, got %d body=%s", st, string(body))
		}
		var out struct {
			Name     string `json:"name"`
			Calories int    `json:"calories"`
		}
		mustUnmarshal(t, body, &out)
		if out.Name == "" || out.Calories <= 0 {
			t.Fatalf("unexpected recognize response: %+v", out)
		}
	}

	// 17) Health check
	{
		st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health, got %d", st)
		}
	}
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, raw
}

func mustUnmarshal(t *testing.T, raw []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(raw), err)
	}
}
