package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID reads the numeric {id} route variable
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
