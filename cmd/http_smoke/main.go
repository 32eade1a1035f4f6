package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type task struct {
	ID   int64  `json:"id"`
	Task string `json:"task"`
}

// Exercises a running server: add two tasks, list, delete one, list again.
func main() {
	base := flag.String("url", "http://localhost:5000", "server base url")
	flag.Parse()

	client := &http.Client{
		Timeout:       10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	stamp := strconv.FormatInt(time.Now().Unix(), 10)
	first, second := "smoke milk "+stamp, "smoke dog "+stamp

	for _, d := range []string{first, second} {
		res, err := client.PostForm(*base+"/add", url.Values{"task": {d}})
		if err != nil {
			log.Fatalf("add: %v", err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusFound {
			log.Fatalf("add %q: status %d", d, res.StatusCode)
		}
	}

	tasks := list(client, *base)
	ids := map[string]int64{}
	for _, t := range tasks {
		ids[t.Task] = t.ID
	}
	if ids[first] == 0 || ids[second] == 0 {
		log.Fatalf("smoke tasks missing from listing")
	}
	fmt.Printf("listed %d tasks\n", len(tasks))

	for _, id := range []int64{ids[first], ids[second]} {
		res, err := client.Get(*base + "/delete/" + strconv.FormatInt(id, 10))
		if err != nil {
			log.Fatalf("delete: %v", err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusFound {
			log.Fatalf("delete %d: status %d", id, res.StatusCode)
		}
	}

	for _, t := range list(client, *base) {
		if t.ID == ids[first] || t.ID == ids[second] {
			log.Fatalf("task %d still listed after delete", t.ID)
		}
	}
	fmt.Println("smoke ok")
}

func list(client *http.Client, base string) []task {
	res, err := client.Get(base + "/api/v1/tasks")
	if err != nil {
		log.Fatalf("list: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("list: status %d", res.StatusCode)
	}
	var body struct {
		Tasks []task `json:"tasks"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Fatalf("decode: %v", err)
	}
	return body.Tasks
}
