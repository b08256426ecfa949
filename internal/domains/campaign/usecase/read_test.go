package usecase

import (
	"context"
	"testing"

	"tradehub/go-backend/internal/domains/campaign/model"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/ledger/ledgertest"
)

// productTuple builds a valid 17-field product campaign record.
func productTuple(name string) ledger.Tuple {
	return ledger.Tuple{
		"hub1organizer", // organizer
		uint64(0),       // campaignType: product
		uint64(1),       // direction: outbound
		name,
		"fresh produce for export",
		uint64(10),        // minOrderQuantity
		uint64(4),         // currentQuantity
		"5500000",         // pricePerUnit 5.50
		"crate",           // unit
		"15000000000",     // targetAmount 15000
		"275000000",       // currentAmount 275
		int64(1767225600), // deadline
		uint64(0),         // status: active
		int64(1764547200), // createdAt
		uint64(2),         // participantCount
		"",                // originPort (unused for product)
		"",                // destinationPort
	}
}

func containerTuple(origin, dest string) ledger.Tuple {
	t := productTuple("container share")
	t[1] = uint64(1) // container
	t[15] = origin
	t[16] = dest
	return t
}

func TestGetCampaignDecodesProduct(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			if method != "getCampaign" {
				t.Fatalf("unexpected read %s.%s", contract, method)
			}
			return productTuple("bulk mango order"), nil
		},
	}
	c := New(fake, quietLogger())

	got, err := c.GetCampaign(context.Background(), 3)
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if got.ID != 3 || got.Type != model.CampaignTypeProduct {
		t.Fatalf("id/type = %d/%v", got.ID, got.Type)
	}
	if got.Name != "bulk mango order" || got.Creator != "hub1organizer" {
		t.Fatalf("name/creator = %q/%q", got.Name, got.Creator)
	}
	if got.TargetAmount != "15000" || got.CurrentAmount != "275" {
		t.Fatalf("amounts = %q/%q", got.TargetAmount, got.CurrentAmount)
	}
	if got.Product == nil {
		t.Fatal("product details missing")
	}
	if got.Product.PricePerUnit != "5.5" || got.Product.Unit != "crate" {
		t.Fatalf("product details = %+v", got.Product)
	}
	if got.Container != nil {
		t.Fatal("container details set on a product campaign")
	}
	if got.Deadline.Unix() != 1767225600 {
		t.Fatalf("deadline = %v", got.Deadline)
	}
}

func TestGetCampaignDecodesContainer(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			return containerTuple("Kingston", "Bridgetown"), nil
		},
	}
	c := New(fake, quietLogger())

	got, err := c.GetCampaign(context.Background(), 5)
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if got.Type != model.CampaignTypeContainer || got.Container == nil {
		t.Fatalf("type/container = %v/%v", got.Type, got.Container)
	}
	if got.Container.OriginPort != "Kingston" || got.Container.DestinationPort != "Bridgetown" {
		t.Fatalf("ports = %+v", got.Container)
	}
	if got.Product != nil {
		t.Fatal("product details set on a container campaign")
	}
}

func TestGetCampaignRejectsShortRecord(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			return productTuple("truncated")[:12], nil
		},
	}
	c := New(fake, quietLogger())
	if _, err := c.GetCampaign(context.Background(), 1); err == nil {
		t.Fatal("expected decode error for truncated record")
	}
}

func TestListCampaignsSkipsBadRecords(t *testing.T) {
	// counter = 4, so ids 1..3 exist; id 2 is corrupt.
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			if method == "campaignCounter" {
				return ledger.Tuple{uint64(4)}, nil
			}
			id := args[0].(uint64)
			if id == 2 {
				bad := productTuple("corrupt")
				bad[12] = uint64(99) // unknown status
				return bad, nil
			}
			return productTuple("ok"), nil
		},
	}
	c := New(fake, quietLogger())

	got, err := c.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("campaigns = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("ids = %d, %d; want 1, 3", got[0].ID, got[1].ID)
	}
}

func TestListCampaignsEmptyLedger(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			return ledger.Tuple{uint64(1)}, nil // counter starts at 1
		},
	}
	c := New(fake, quietLogger())

	got, err := c.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("campaigns = %d, want 0", len(got))
	}
}

func TestContainerRequirements(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			if method != "getContainerRequirements" {
				t.Fatalf("unexpected read %s.%s", contract, method)
			}
			return ledger.Tuple{uint64(4), int64(-18), int64(-10), uint64(25000), uint64(1200), false, true}, nil
		},
	}
	c := New(fake, quietLogger())

	got, err := c.ContainerRequirements(context.Background(), 5)
	if err != nil {
		t.Fatalf("requirements: %v", err)
	}
	want := model.ContainerRequirements{
		ContainerType:         model.ContainerType(4),
		MinTempCelsius:        -18,
		MaxTempCelsius:        -10,
		MaxWeightKg:           25000,
		CurrentWeightKg:       1200,
		RequiresRefrigeration: true,
	}
	if got != want {
		t.Fatalf("requirements = %+v, want %+v", got, want)
	}
}
