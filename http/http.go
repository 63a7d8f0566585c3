package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mirefield/discord-quote/logger/dlog"
)

func Setup(port int) {
	http.HandleFunc("/", rootHandler)
	http.HandleFunc("/status", statusHandler)
	err := http.ListenAndServe(":"+strconv.Itoa(port), nil)
	if err != nil {
		dlog.Error("Could not serve status server", "port", port)
		panic(err)
	}
}

func statusHandler(w http.ResponseWriter, r *http.Request) {
	logRequest(r)
	codeParams, ok := r.URL.Query()["cli"]
	if ok && len(codeParams) > 0 {
		statusCode, _ := strconv.Atoi(codeParams[0])
		if statusCode >= 200 && statusCode < 600 {
			w.WriteHeader(statusCode)
		}
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	logRequest(r)
	fmt.Fprintf(w, "Hello! you've requested %s\n", r.URL.Path)
}

func logRequest(r *http.Request) {
	dlog.Info("Got request!", "method", r.Method, "uri", r.RequestURI)
}
