package v1

// Version of the REST API
const Version = "v1"

// BasePath every v1 route is mounted under
const BasePath = "/api/" + Version + "/hades"
