package parseschedule

import (
	"context"
	"errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2022, 11, 5, 10, 30, 0, 0, time.UTC)

type stubExporter struct {
	spec string
	err  error
}

func (e *stubExporter) Export(result recurrence.Result) (string, error) {
	return e.spec, e.err
}

type testParseScheduleSuite struct {
	suite.Suite
	Logger   *logging.FakeLogger
	Parser   *schedule.StubParser
	Cache    *schedule.TestParseCache
	Exporter *stubExporter
	Service  services.Service[Input, Result]
}

func (suite *testParseScheduleSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Parser = schedule.NewStubParser(recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{{"m": {0, 30}}},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      recurrence.NoError,
	})
	suite.Cache = schedule.NewTestParseCache()
	suite.Exporter = &stubExporter{spec: "* 0,30 * * * *"}
	suite.Service = New(
		suite.Logger,
		suite.Parser,
		suite.Cache,
		suite.Exporter,
		func() time.Time { return Now },
	)
}

func TestParseScheduleService(t *testing.T) {
	suite.Run(t, new(testParseScheduleSuite))
}

func (suite *testParseScheduleSuite) TestParsedAndCached() {
	assert := suite.Require()
	result, err := suite.Service.Run(context.Background(), Input{Query: "every 30 minutes"})

	assert.Nil(err)
	assert.Equal(suite.Parser.Result, result.Result)
	assert.False(result.Cached)
	assert.True(result.Cron.IsPresent)
	assert.Equal("* 0,30 * * * *", result.Cron.Value)
	assert.Equal([]string{"every 30 minutes"}, suite.Parser.Calls)
	assert.Contains(suite.Cache.Results, "every 30 minutes")
}

func (suite *testParseScheduleSuite) TestCacheHitSkipsParser() {
	assert := suite.Require()
	cached := recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{{"h": {5}}},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      recurrence.NoError,
	}
	suite.Cache.Results["at 5am"] = cached

	result, err := suite.Service.Run(context.Background(), Input{Query: "at 5am"})

	assert.Nil(err)
	assert.True(result.Cached)
	assert.Equal(cached, result.Result)
	assert.Empty(suite.Parser.Calls)
}

func (suite *testParseScheduleSuite) TestResultDependingOnNowIsNotCached() {
	assert := suite.Require()
	suite.Parser.Result = recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{{"fd_a": {1}, "fd_b": {2}}},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      recurrence.NoError,
	}

	_, err := suite.Service.Run(context.Background(), Input{Query: "every minute for 2 hours"})

	assert.Nil(err)
	assert.Empty(suite.Cache.Results)
}

func (suite *testParseScheduleSuite) TestParseErrorReturnsPartialResult() {
	assert := suite.Require()
	suite.Parser.Result = recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      6,
	}
	suite.Parser.Err = schedule.ErrTextParsing

	result, err := suite.Service.Run(context.Background(), Input{Query: "every fortnight"})

	assert.ErrorIs(err, schedule.ErrTextParsing)
	assert.Equal(6, result.Result.Error)
	assert.False(result.Cron.IsPresent)
	assert.Empty(suite.Cache.Results)
	assert.Equal(0, suite.Logger.CountLevel(logging.ERROR))
}

func (suite *testParseScheduleSuite) TestUnexpectedParserErrorIsLogged() {
	assert := suite.Require()
	suite.Parser.Err = errors.New("boom")

	_, err := suite.Service.Run(context.Background(), Input{Query: "at 5pm"})

	assert.NotNil(err)
	assert.Equal(1, suite.Logger.CountLevel(logging.ERROR))
}

func (suite *testParseScheduleSuite) TestCronIsOptional() {
	assert := suite.Require()
	suite.Exporter.err = schedule.ErrNotExpressibleAsCron

	result, err := suite.Service.Run(context.Background(), Input{Query: "on the last day of the month"})

	assert.Nil(err)
	assert.False(result.Cron.IsPresent)
	assert.Equal(0, suite.Logger.CountLevel(logging.WARNING))
}

func (suite *testParseScheduleSuite) TestCacheFailuresDoNotFailParsing() {
	assert := suite.Require()
	suite.Cache.GetError = errors.New("redis is down")
	suite.Cache.SetError = errors.New("redis is down")

	result, err := suite.Service.Run(context.Background(), Input{Query: "every 30 minutes"})

	assert.Nil(err)
	assert.Equal(suite.Parser.Result, result.Result)
	assert.Equal(2, suite.Logger.CountLevel(logging.WARNING))
}

func (suite *testParseScheduleSuite) TestRateLimitKey() {
	suite.Require().Equal("parse-schedule::10.0.0.1", Input{ClientIP: "10.0.0.1"}.GetRateLimitKey())
}
