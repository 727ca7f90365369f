package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Manual smoke test against a running server. Signs in anonymously, walks a
// project through the workspace and generates a report.
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name string) {
	color.Cyan("\n=== %s ===", name)
}

func check(resp *http.Response, body []byte, err error) {
	if err != nil {
		color.Red("Request failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("HTTP %d", resp.StatusCode)
		prettyPrint(body)
		os.Exit(1)
	}
	color.Green("HTTP %d", resp.StatusCode)
	prettyPrint(body)
}

func main() {
	step("Anonymous sign-in")
	resp, body, err := sendRequest("POST", "/auth/v1/anonymous", "", nil)
	check(resp, body, err)

	var signIn struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &signIn); err != nil || signIn.Data.AccessToken == "" {
		color.Red("No access token in response")
		os.Exit(1)
	}
	token := signIn.Data.AccessToken

	step("Catalog")
	resp, body, err = sendRequest("GET", "/catalog/v1?q=react", token, nil)
	check(resp, body, err)

	step("Add project")
	resp, body, err = sendRequest("POST", "/workspace/v1/projects", token, map[string]string{
		"category":    "frontend",
		"template_id": "react",
	})
	check(resp, body, err)

	var added struct {
		Data struct {
			InstanceId string `json:"instance_id"`
		} `json:"data"`
	}
	json.Unmarshal(body, &added)

	step("Configure project")
	resp, body, err = sendRequest("PATCH", "/workspace/v1/config", token, map[string]string{
		"instance_id": added.Data.InstanceId,
		"key":         "projectName",
		"value":       "demo",
	})
	check(resp, body, err)

	step("File tree")
	resp, body, err = sendRequest("GET", "/workspace/v1/tree", token, nil)
	check(resp, body, err)

	step("Save to cloud")
	resp, body, err = sendRequest("POST", "/workspace/v1/save", token, nil)
	check(resp, body, err)

	step("Generate report")
	resp, body, err = sendRequest("POST", "/report/v1/generate", token, map[string]interface{}{
		"integration_mode": "standalone",
		"csdm_enabled":     true,
	})
	check(resp, body, err)

	color.Green("\nAll smoke steps passed")
}
