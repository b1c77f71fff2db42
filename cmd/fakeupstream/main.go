package main

import (
	"fmt"
	"log"
	"net/http"
)

// Local stand-in for the public upstreams, for offline testing:
//
//	config.yaml:
//	  posts_url: "http://localhost:9000/posts"
//	  random_fact_url: "http://localhost:9000/random-fact"
func main() {
	http.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"userId":1,"id":1,"title":"local post","body":"served by fakeupstream"}]`)
	})

	http.HandleFunc("/random-fact", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"local-1","text":"Bananas are berries.","source":"fakeupstream"}`)
	})

	log.Println("Fake upstream listening on :9000")
	if err := http.ListenAndServe(":9000", nil); err != nil {
		log.Fatalf("upstream error: %v", err)
	}
}
