package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Gateway --dir ../domain/footballapi --output domain/footballapi --outpkg footballapimock --filename gateway_mock.go
