package host

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Event action names used in the JSONL stream.
const (
	ActionRunBegin     = "runBegin"
	ActionTestComplete = "testComplete"
	ActionRunEnd       = "runEnd"
)

// Envelope is one line of a recorded event stream. Exactly one of the
// payload fields is populated, matching Action.
type Envelope struct {
	Action string          `json:"action"`
	Config *RunConfig      `json:"config,omitempty"`
	Plan   *TestPlan       `json:"plan,omitempty"`
	Test   *TestCompletion `json:"test,omitempty"`
	Result *RunResult      `json:"result,omitempty"`
}

// Replay decodes a JSONL lifecycle event stream and drives the reporter
// with it. Malformed lines are logged and skipped; the stream is processed
// best-effort. Errors returned by the reporter itself (fatal output faults,
// calls after run end) abort the replay.
func Replay(r io.Reader, rep Reporter, log *zap.SugaredLogger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			log.Warnw("Skipping malformed event line", "line", lineNo, "err", err)
			continue
		}

		if err := dispatch(&env, rep, log, lineNo); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read event stream: %w", err)
	}
	return nil
}

// ReplayFile opens a recorded event stream and replays it.
func ReplayFile(path string, rep Reporter, log *zap.SugaredLogger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open event stream %s: %w", path, err)
	}
	defer f.Close()
	return Replay(f, rep, log)
}

func dispatch(env *Envelope, rep Reporter, log *zap.SugaredLogger, lineNo int) error {
	switch env.Action {
	case ActionRunBegin:
		cfg := RunConfig{Workers: 1}
		if env.Config != nil {
			cfg = *env.Config
		}
		var plan TestPlan
		if env.Plan != nil {
			plan = *env.Plan
		}
		return rep.OnRunBegin(cfg, plan)
	case ActionTestComplete:
		if env.Test == nil {
			log.Warnw("testComplete event without test payload", "line", lineNo)
			return nil
		}
		return rep.OnTestComplete(*env.Test)
	case ActionRunEnd:
		var res RunResult
		if env.Result != nil {
			res = *env.Result
		}
		return rep.OnRunEnd(res)
	default:
		log.Warnw("Unknown event action", "line", lineNo, "action", env.Action)
		return nil
	}
}
