// Smoke check against a running instance: go run ./scripts/apicheck
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
}

type todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func main() {
	base := "http://localhost:8080"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}
	client := &http.Client{Timeout: 5 * time.Second}

	var created todo
	step("create", do(client, "POST", base+"/api/todos",
		`{"title": " Buy milk ", "description": "2 liters"}`, 201, &created))
	if created.Title != "Buy milk" {
		fail("create: title not trimmed: %q", created.Title)
	}

	var got todo
	step("get", do(client, "GET", base+"/api/todos/"+created.ID, "", 200, &got))

	var updated todo
	step("update", do(client, "PUT", base+"/api/todos/"+created.ID,
		`{"completed": true}`, 200, &updated))
	if !updated.Completed {
		fail("update: completed not set")
	}

	step("list", do(client, "GET", base+"/api/todos", "", 200, nil))
	step("delete", do(client, "DELETE", base+"/api/todos/"+created.ID, "", 200, nil))
	step("delete again", do(client, "DELETE", base+"/api/todos/"+created.ID, "", 404, nil))
	step("bad id", do(client, "GET", base+"/api/todos/not-a-valid-id", "", 400, nil))

	fmt.Println("all checks passed")
}

func do(client *http.Client, method, url, body string, wantStatus int, out *todo) error {
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s %s: status %d, want %d", method, url, resp.StatusCode, wantStatus)
	}
	if out == nil {
		return nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}

func step(name string, err error) {
	if err != nil {
		fail("%s: %v", name, err)
	}
	fmt.Printf("ok: %s\n", name)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
