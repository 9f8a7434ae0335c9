// Manual smoke test for the transport wizard endpoint: sends one POST with a
// canned payload and a fixed session cookie, then dumps the raw response.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	host := flag.String("host", "localhost", "server host")
	port := flag.String("port", "5000", "server port")
	path := flag.String("path", "/api/wizard/transport", "request path")
	cookie := flag.String("cookie", "sessionId=smoke-test-session", "session cookie")
	flag.Parse()

	payload := map[string]interface{}{
		"event_id":          1,
		"mode":              "provided",
		"provider_name":     "Valley Coaches",
		"provider_phone":    "+1-555-0142",
		"provider_email":    "dispatch@valleycoaches.test",
		"instructions":      "Pickup from the north lobby, 30 minutes before each ceremony.",
		"pickup_provided":   true,
		"dropoff_provided":  true,
		"shuttle_provided":  false,
		"flight_assistance": true,
		"flight_mode":       "both",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal payload: %v\n", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("http://%s:%s%s", *host, *port, *path)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", *cookie)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Println("Headers:")
	for name, values := range resp.Header {
		for _, v := range values {
			fmt.Printf("  %s: %s\n", name, v)
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read body: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Body:")
	fmt.Println(string(respBody))
}
