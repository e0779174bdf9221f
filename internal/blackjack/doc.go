// Package blackjack implements a single-player blackjack environment with a
// running card count.
//
// The environment follows a reset/step contract: Reset deals a round and
// returns an Observation, Step applies an Action and returns the next
// Observation, a reward and a done flag. The dealer stands on 17 and a bust
// hand scores 0 when hands are compared.
//
// # Sessions
//
// The shoe and the running count outlive individual rounds, so they live in
// a Session that is passed to the environment rather than held globally:
//
//	rng := randutil.New(42)
//	session := blackjack.NewSession(rng, shoe.DefaultOptions())
//	env := blackjack.NewEnv(session, blackjack.Config{CountingScoreThresh: 2})
//	obs, err := env.Reset()
//	// ...
//	res, err := env.Step(blackjack.Hit)
//
// Independent games need independent sessions; a Session is not safe for
// concurrent use.
//
// # Counting
//
// Every card drawn is exposed to the session's counting.Tracker, except the
// dealer's second card which is concealed as soon as it is dealt. That hole
// card is exposed again at the start of the following round, after any
// reshuffle, and before the new hole card is concealed. The Observation's
// Advantage bit is the tracker's score compared against
// Config.CountingScoreThresh at the moment the observation is built.
package blackjack
