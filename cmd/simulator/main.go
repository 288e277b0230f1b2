// Demo traffic generator. Logs in with the seeded accounts and drives the
// API: adds vehicles, admits one for repair, submits modification requests,
// and decides them, so a fresh deployment has data to look at.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

var stock = []struct {
	Number string
	Type   string
	Brand  string
	Model  string
	Color  string
	Price  float64
}{
	{"CAB-1234", "motorcycle", "Honda", "CB125", "Red", 450000},
	{"BHG-5521", "scooter", "Yamaha", "Ray ZR", "Blue", 380000},
	{"QL-7788", "three-wheeler", "Bajaj", "RE", "Green", 950000},
	{"KV-9034", "car", "Suzuki", "Alto", "White", 2750000},
	{"BCD-4410", "motorcycle", "Bajaj", "CT100", "Black", 290000},
}

type client struct {
	apiURL string
	token  string
	http   *http.Client
}

func newClient(apiURL string) *client {
	return &client{
		apiURL: apiURL,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) post(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.apiURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *client) login(email, password string) error {
	var result struct {
		Token string `json:"token"`
	}
	err := c.post("/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return err
	}
	c.token = result.Token
	return nil
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	admin := newClient(apiURL)
	if err := admin.login("admin@lankanwheels.lk", "admin123"); err != nil {
		log.WithError(err).Fatal("admin login failed")
	}
	log.Info("logged in as admin")

	var vehicleIDs []string
	for _, s := range stock {
		var vehicle struct {
			ID string `json:"id"`
		}
		err := admin.post("/api/vehicles", map[string]interface{}{
			"vehicleNumber": s.Number,
			"type":          s.Type,
			"brand":         s.Brand,
			"model":         s.Model,
			"color":         s.Color,
			"price":         s.Price,
		}, &vehicle)
		if err != nil {
			log.WithError(err).Error("failed to add vehicle")
			continue
		}
		vehicleIDs = append(vehicleIDs, vehicle.ID)
		log.WithField("vehicle", s.Number).Info("added vehicle")
		// Ids are timestamp-derived; space the inserts out.
		time.Sleep(5 * time.Millisecond)
	}
	if len(vehicleIDs) == 0 {
		log.Fatal("no vehicles created")
	}

	err := admin.post("/api/repairs", map[string]interface{}{
		"vehicleId":    vehicleIDs[0],
		"repairShop":   "AutoCare Colombo",
		"location":     "Colombo 03",
		"dateAdmitted": time.Now().Format(time.RFC3339),
		"cost":         25000,
		"description":  "Front brake overhaul",
	}, nil)
	if err != nil {
		log.WithError(err).Error("failed to admit repair")
	} else {
		log.Info("admitted vehicle for repair")
	}

	employee := newClient(apiURL)
	if err := employee.login("kasun@lankanwheels.lk", "emp123"); err != nil {
		log.WithError(err).Fatal("employee login failed")
	}
	log.Info("logged in as employee")

	actions := []string{"update", "delete"}
	var requestIDs []string
	for i := 0; i < 3; i++ {
		var request struct {
			ID string `json:"id"`
		}
		err := employee.post("/api/requests", map[string]string{
			"vehicleId": vehicleIDs[rand.Intn(len(vehicleIDs))],
			"action":    actions[rand.Intn(len(actions))],
		}, &request)
		if err != nil {
			log.WithError(err).Error("failed to submit request")
			continue
		}
		requestIDs = append(requestIDs, request.ID)
		time.Sleep(5 * time.Millisecond)
	}
	log.WithField("count", len(requestIDs)).Info("submitted modification requests")

	outcomes := []string{"approve", "reject"}
	for _, id := range requestIDs {
		err := admin.post("/api/requests/"+id+"/decision", map[string]string{
			"outcome": outcomes[rand.Intn(len(outcomes))],
		}, nil)
		if err != nil {
			log.WithError(err).Error("failed to decide request")
		}
	}
	log.Info("decided pending requests")

	if err := employee.post("/api/auth/logout", map[string]string{}, nil); err != nil {
		log.WithError(err).Error("employee logout failed")
	}
	log.Info("simulation complete")
}
