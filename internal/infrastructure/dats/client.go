// Package dats talks to the Trapeze PASS web-booking service DATS runs.
// The wire format is SOAP 1.1: requests are small XML envelopes, responses
// are scraped by tag. No business rules live here; callers validate before
// anything reaches this client.
package dats

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/example/dats-assistant/internal/domain/trip"
	"github.com/example/dats-assistant/internal/temporal"
)

const (
	servicePath = "/PassWeb/BookingService.asmx"
	actionNS    = "http://tempuri.org/"
)

type Credentials struct {
	ClientID string // DATS registration number
	Passcode string
}

type Client struct {
	hc    *http.Client
	base  string
	creds Credentials

	mu       sync.Mutex
	loggedIn bool
}

func New(baseURL string, creds Credentials) *Client {
	// The service tracks the session in cookies set at login.
	jar, _ := cookiejar.New(nil)
	return &Client{
		hc:    &http.Client{Timeout: 15 * time.Second, Jar: jar},
		base:  strings.TrimRight(baseURL, "/"),
		creds: creds,
	}
}

func (c *Client) Name() string { return "dats" }

type validateClientRequest struct {
	XMLName  xml.Name `xml:"ValidateClient"`
	NS       string   `xml:"xmlns,attr"`
	ClientID string   `xml:"clientID"`
	Passcode string   `xml:"passCode"`
}

// Login validates the registration number and passcode and establishes the
// session cookie every later call rides on.
func (c *Client) Login(ctx context.Context) error {
	if c.creds.ClientID == "" || c.creds.Passcode == "" {
		return fmt.Errorf("dats: missing client ID or passcode")
	}
	body, err := c.call(ctx, "ValidateClient", validateClientRequest{
		NS:       actionNS,
		ClientID: c.creds.ClientID,
		Passcode: c.creds.Passcode,
	})
	if err != nil {
		return err
	}
	result := strings.ToLower(xmlTag(body, "ValidateClientResult"))
	if result != "true" && result != "ok" {
		return fmt.Errorf("dats: login rejected for client %s", c.creds.ClientID)
	}
	c.mu.Lock()
	c.loggedIn = true
	c.mu.Unlock()
	return nil
}

func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	ok := c.loggedIn
	c.mu.Unlock()
	if ok {
		return nil
	}
	return c.Login(ctx)
}

type bookTripRequest struct {
	XMLName        xml.Name `xml:"BookTrip"`
	NS             string   `xml:"xmlns,attr"`
	ClientID       string   `xml:"clientID"`
	TripDate       string   `xml:"tripDate"`   // YYYY-MM-DD
	PickupTime     string   `xml:"pickupTime"` // HH:MM, 24-hour
	PickupAddress  string   `xml:"pickupAddress"`
	DropoffAddress string   `xml:"dropoffAddress"`
	Purpose        string   `xml:"purpose,omitempty"`
	MobilityAids   string   `xml:"mobilityAids,omitempty"` // semicolon-joined
}

// Book submits a trip request and returns the confirmation number and
// pickup window DATS assigned.
func (c *Client) Book(ctx context.Context, req trip.Request) (trip.Confirmation, error) {
	if err := c.ensureSession(ctx); err != nil {
		return trip.Confirmation{}, err
	}
	body, err := c.call(ctx, "BookTrip", bookTripRequest{
		NS:             actionNS,
		ClientID:       c.creds.ClientID,
		TripDate:       req.Date.String(),
		PickupTime:     req.Pickup.String(),
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		Purpose:        req.Purpose,
		MobilityAids:   strings.Join(req.MobilityAids, ";"),
	})
	if err != nil {
		return trip.Confirmation{}, err
	}
	id := xmlTag(body, "BookingID")
	if id == "" {
		id = xmlTag(body, "ConfirmationNumber")
	}
	if id == "" {
		if msg := xmlTag(body, "ErrorMessage"); msg != "" {
			return trip.Confirmation{}, fmt.Errorf("dats: booking refused: %s", msg)
		}
		return trip.Confirmation{}, fmt.Errorf("dats: booking response had no confirmation number")
	}
	conf := trip.Confirmation{BookingID: id}
	if t, ok := temporal.ParseClockTime(xmlTag(body, "PickupWindowStart")); ok {
		conf.WindowStart = t
	}
	if t, ok := temporal.ParseClockTime(xmlTag(body, "PickupWindowEnd")); ok {
		conf.WindowEnd = t
	}
	return conf, nil
}

type cancelTripRequest struct {
	XMLName   xml.Name `xml:"CancelTrip"`
	NS        string   `xml:"xmlns,attr"`
	ClientID  string   `xml:"clientID"`
	BookingID string   `xml:"bookingID"`
}

func (c *Client) Cancel(ctx context.Context, bookingID string) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}
	body, err := c.call(ctx, "CancelTrip", cancelTripRequest{
		NS:        actionNS,
		ClientID:  c.creds.ClientID,
		BookingID: bookingID,
	})
	if err != nil {
		return err
	}
	result := strings.ToLower(xmlTag(body, "CancelTripResult"))
	if result != "true" && result != "success" {
		if msg := xmlTag(body, "ErrorMessage"); msg != "" {
			return fmt.Errorf("dats: cancellation refused: %s", msg)
		}
		return fmt.Errorf("dats: cancellation refused for booking %s", bookingID)
	}
	return nil
}

type getClientTripsRequest struct {
	XMLName  xml.Name `xml:"GetClientTrips"`
	NS       string   `xml:"xmlns,attr"`
	ClientID string   `xml:"clientID"`
}

// Trips lists the rider's scheduled trips as DATS reports them.
func (c *Client) Trips(ctx context.Context) ([]trip.Trip, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}
	body, err := c.call(ctx, "GetClientTrips", getClientTripsRequest{
		NS:       actionNS,
		ClientID: c.creds.ClientID,
	})
	if err != nil {
		return nil, err
	}
	var trips []trip.Trip
	for _, block := range xmlTags(body, "Trip") {
		t := trip.Trip{
			BookingID:      xmlTag(block, "BookingID"),
			PickupAddress:  xmlTag(block, "PickupAddress"),
			DropoffAddress: xmlTag(block, "DropoffAddress"),
			Status:         tripStatus(xmlTag(block, "Status")),
		}
		if d, ok := temporal.ResolveFlexibleDate(xmlTag(block, "TripDate"), time.Now(), temporal.Location()); ok {
			t.Date = d
		}
		if ct, ok := temporal.ParseClockTime(xmlTag(block, "PickupTime")); ok {
			t.Pickup = ct
		}
		if ct, ok := temporal.ParseClockTime(xmlTag(block, "PickupWindowStart")); ok {
			t.WindowStart = ct
		}
		if ct, ok := temporal.ParseClockTime(xmlTag(block, "PickupWindowEnd")); ok {
			t.WindowEnd = ct
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func tripStatus(s string) trip.Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cancelled", "canceled":
		return trip.StatusCancelled
	case "completed", "performed":
		return trip.StatusCompleted
	default:
		return trip.StatusScheduled
	}
}

// call wraps op in a SOAP 1.1 envelope, posts it, and returns the raw
// response body after surfacing any SOAP fault as an error.
func (c *Client) call(ctx context.Context, action string, op any) (string, error) {
	inner, err := xml.Marshal(op)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>`)
	buf.Write(inner)
	buf.WriteString(`</soap:Body></soap:Envelope>`)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+servicePath, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("content-type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", actionNS+action)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if fault := xmlTag(string(body), "faultstring"); fault != "" {
		return "", fmt.Errorf("dats: %s fault: %s", action, fault)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("dats: %s failed (status=%d)", action, resp.StatusCode)
	}
	return string(body), nil
}
