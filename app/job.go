package app

import (
	"github.com/nlab-ml/nlab/nlab"

	"net/http"

	"github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

type DBJob struct {
	nlab.Job
}

const JobQuery = "SELECT id, name, op, metadata, start_time, done, error FROM jobs"

func jobListHelper(rows *Rows) []*DBJob {
	jobs := []*DBJob{}
	for rows.Next() {
		var j DBJob
		rows.Scan(&j.ID, &j.Name, &j.Op, &j.Metadata, &j.StartTime, &j.Done, &j.Error)
		jobs = append(jobs, &j)
	}
	return jobs
}

func ListJobs() []*DBJob {
	rows := db.Query(JobQuery + " ORDER BY id DESC")
	return jobListHelper(rows)
}

func GetJob(id int) *DBJob {
	rows := db.Query(JobQuery+" WHERE id = ?", id)
	jobs := jobListHelper(rows)
	if len(jobs) == 1 {
		return jobs[0]
	} else {
		return nil
	}
}

func NewJob(name string, op string, metadata string) *DBJob {
	res := db.Exec(
		"INSERT INTO jobs (name, op, metadata, start_time) VALUES (?, ?, ?, datetime('now'))",
		name, op, metadata,
	)
	return GetJob(res.LastInsertId())
}

// SetDone marks the job finished, with error="" on success, and pushes the
// final job record to connected clients.
func (j *DBJob) SetDone(error string) {
	j.Done = true
	j.Error = error
	db.Exec("UPDATE jobs SET done = 1, error = ? WHERE id = ?", error, j.ID)
	if jobEvents != nil {
		jobEvents.BroadcastToRoom("jobs", "job", j)
	}
}

var jobEvents *socketio.Server

func init() {
	SetupFuncs = append(SetupFuncs, func(server *socketio.Server) {
		jobEvents = server
	})

	Router.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
		nlab.JsonResponse(w, ListJobs())
	}).Methods("GET")

	Router.HandleFunc("/jobs/{job_id}", func(w http.ResponseWriter, r *http.Request) {
		jobID := nlab.ParseInt(mux.Vars(r)["job_id"])
		job := GetJob(jobID)
		if job == nil {
			http.Error(w, "no such job", 404)
			return
		}
		nlab.JsonResponse(w, job)
	}).Methods("GET")
}
