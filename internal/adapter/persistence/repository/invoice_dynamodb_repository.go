package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/domain/money"
	"whitepaper_billing/internal/usecase/interfaces"
)

const defaultInvoicesTableName = "invoices"

type invoiceHeaderItem struct {
	ID                 string          `dynamodbav:"id"`
	Number             string          `dynamodbav:"number"`
	Client             entities.Client `dynamodbav:"client"`
	IssueDate          string          `dynamodbav:"issue_date"`
	DueDate            string          `dynamodbav:"due_date"`
	Notes              string          `dynamodbav:"notes,omitempty"`
	Terms              string          `dynamodbav:"terms,omitempty"`
	Status             string          `dynamodbav:"status"`
	Recurrence         string          `dynamodbav:"recurrence"`
	NextGenerationDate string          `dynamodbav:"next_generation_date,omitempty"`
	CreatedAt          string          `dynamodbav:"created_at"`
	UpdatedAt          string          `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists the Invoice aggregate in DynamoDB.
//
// Table requirements:
//   - header PK: id (invoices table)
//   - item rows in the shared document_items table
//
// Save replaces the header and the full item row set; Delete removes item
// rows before the header. Totals are never stored: they are recomputed from
// item rows on every load, so a header can never disagree with its items.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	items     documentItemStore
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		items:     newDocumentItemStore(ddb),
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceHeaderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		inv, err := r.hydrate(ctx, it)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceHeaderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return r.hydrate(ctx, it)
}

func (r *InvoiceDynamoRepository) Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceHeaderItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	if err := r.items.replace(ctx, entities.DocumentKindInvoice, inv.ID, inv.Items); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	// Item rows go first so a failure cannot leave orphaned rows behind a
	// deleted header.
	if err := r.items.deleteAll(ctx, id); err != nil {
		return err
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *InvoiceDynamoRepository) hydrate(ctx context.Context, it invoiceHeaderItem) (entities.Invoice, error) {
	items, err := r.items.load(ctx, it.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceHeaderItem(it, items), nil
}

func toInvoiceHeaderItem(inv entities.Invoice) invoiceHeaderItem {
	return invoiceHeaderItem{
		ID:                 inv.ID,
		Number:             inv.Number,
		Client:             inv.Client,
		IssueDate:          inv.IssueDate.UTC().Format(time.RFC3339Nano),
		DueDate:            inv.DueDate.UTC().Format(time.RFC3339Nano),
		Notes:              inv.Notes,
		Terms:              inv.Terms,
		Status:             string(inv.Status),
		Recurrence:         string(inv.Recurrence),
		NextGenerationDate: formatOptionalTime(inv.NextGenerationDate),
		CreatedAt:          inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceHeaderItem(it invoiceHeaderItem, items []entities.LineItem) entities.Invoice {
	issueDate, _ := time.Parse(time.RFC3339Nano, it.IssueDate)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Invoice{
		ID:                 it.ID,
		Number:             it.Number,
		Client:             it.Client,
		IssueDate:          issueDate,
		DueDate:            dueDate,
		Items:              items,
		Notes:              it.Notes,
		Terms:              it.Terms,
		Status:             entities.InvoiceStatus(it.Status),
		Recurrence:         entities.Recurrence(it.Recurrence),
		NextGenerationDate: parseOptionalTime(it.NextGenerationDate),
		Subtotal:           money.DocumentSubtotal(items),
		TaxTotal:           money.DocumentTax(items),
		Total:              money.DocumentTotal(items),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
