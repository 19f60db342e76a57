package dbprobe

import (
    "context"
    "os"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
)

const maxCollections = 10

// Report is the diagnostic payload of the /test endpoint.
type Report struct {
    Backend          string   `json:"backend"`
    Database         string   `json:"database"`
    DatabaseURL      string   `json:"database_url"`
    DatabaseName     string   `json:"database_name"`
    ConnectionStatus string   `json:"connection_status"`
    Collections      []string `json:"collections"`
}

// Probe checks MongoDB availability on demand. A Probe built without a URI
// still produces a report; it just says the database is not configured.
type Probe struct {
    client *mongo.Client
    dbName string
}

func New(ctx context.Context, uri, dbName string) *Probe {
    p := &Probe{dbName: dbName}
    if uri == "" {
        return p
    }
    // Connect does not dial; connectivity is checked per request in Check.
    client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
    if err != nil {
        return p
    }
    p.client = client
    return p
}

// Check pings the database and lists up to ten collection names.
// It never fails: problems are reported inside the Report.
func (p *Probe) Check(ctx context.Context) Report {
    rep := Report{
        Backend:          "running",
        Database:         "not available",
        DatabaseURL:      setOrNot("DATABASE_URL"),
        DatabaseName:     setOrNot("DATABASE_NAME"),
        ConnectionStatus: "not connected",
        Collections:      []string{},
    }
    if p == nil || p.client == nil {
        return rep
    }

    ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
    defer cancel()

    if err := p.client.Ping(ctx, nil); err != nil {
        rep.Database = "error: " + truncate(err.Error(), 50)
        return rep
    }
    rep.ConnectionStatus = "connected"
    rep.Database = "connected"

    name := p.dbName
    if name == "" {
        name = "test"
    }
    names, err := p.client.Database(name).ListCollectionNames(ctx, bson.D{})
    if err != nil {
        rep.Database = "connected but error: " + truncate(err.Error(), 50)
        return rep
    }
    if len(names) > maxCollections {
        names = names[:maxCollections]
    }
    rep.Collections = names
    return rep
}

func setOrNot(env string) string {
    if os.Getenv(env) != "" {
        return "set"
    }
    return "not set"
}

func truncate(s string, n int) string {
    if len(s) <= n {
        return s
    }
    return s[:n]
}
