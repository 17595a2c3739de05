// Ad-hoc probe against a running server: logs in and lists projects.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

func main() {
	client := http.Client{}
	baseurl := os.Getenv("VZNX_URL")
	if baseurl == "" {
		baseurl = "http://localhost:5000"
	}

	login, _ := json.Marshal(map[string]string{
		"name":     "admin",
		"password": os.Getenv("VZNX_ADMIN_PASSWORD"),
	})
	req, err := http.NewRequestWithContext(context.Background(), "POST",
		baseurl+"/api/auth/login", bytes.NewReader(login))
	if err != nil {
		fmt.Println("can't create request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("err:", err)
		return
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var loginResp struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &loginResp); err != nil || loginResp.Data.AccessToken == "" {
		fmt.Println("login failed:", string(body))
		return
	}

	req, err = http.NewRequestWithContext(context.Background(), "GET",
		baseurl+"/api/projects", http.NoBody)
	if err != nil {
		fmt.Println("can't create request")
		return
	}
	req.Header.Set("Authorization", "Bearer "+loginResp.Data.AccessToken)
	req.Header.Set("accept", "application/json")
	resp, err = client.Do(req)
	if err != nil {
		fmt.Println("err:", err)
		return
	}
	body, _ = io.ReadAll(resp.Body)
	fmt.Println(string(body))
	resp.Body.Close()
}
