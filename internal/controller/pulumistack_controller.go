/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	"k8s.io/client-go/util/workqueue"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	crcontroller "sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/stackservice"
)

// PulumiStackReconciler drives a PulumiStack through its finalizer-gated
// state machine: add finalizer and materialize workload on create/update,
// cancel workload and remove finalizer on delete.
type PulumiStackReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
	Gateway  *k8sgateway.Gateway
	Service  *stackservice.Service
}

//+kubebuilder:rbac:groups=pulumi.stromee.de,resources=pulumistacks,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=pulumi.stromee.de,resources=pulumistacks/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=pulumi.stromee.de,resources=pulumistacks/finalizers,verbs=update
//+kubebuilder:rbac:groups=pulumi.stromee.de,resources=gitstacksources;clustergitstacksources;ocistacksources;clusterocistacksources;stackauths;clusterstackauths,verbs=get;list;watch
//+kubebuilder:rbac:groups="",resources=serviceaccounts,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=rbac.authorization.k8s.io,resources=roles;rolebindings,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=batch,resources=cronjobs,verbs=get;list;watch;create;update;patch;delete

// Reconcile implements the state machine described in SPEC_FULL.md §4.4.
func (r *PulumiStackReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	stack := &pulumiv1.PulumiStack{}
	if err := r.Get(ctx, req.NamespacedName, stack); err != nil {
		if errors.IsNotFound(err) {
			logger.Info("PulumiStack not found, assuming it was deleted")
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if stack.DeletionTimestamp != nil {
		if !k8sgateway.HasFinalizer(stack, pulumiv1.Finalizer) {
			return ctrl.Result{}, nil
		}
		return r.handleDeletion(ctx, stack)
	}

	if !k8sgateway.HasFinalizer(stack, pulumiv1.Finalizer) {
		return r.handleCreation(ctx, stack)
	}
	return r.handleUpdate(ctx, stack)
}

// handleCreation adds the finalizer before touching any cluster state that
// the finalizer is meant to protect — the inverse order of the upstream
// source this module replaces, which set the finalizer only after the
// workload had already been materialized (see SPEC_FULL.md §9 REDESIGN).
func (r *PulumiStackReconciler) handleCreation(ctx context.Context, stack *pulumiv1.PulumiStack) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if err := r.Gateway.AddFinalizer(ctx, stack, pulumiv1.Finalizer); err != nil {
		logger.Error(err, "failed to add finalizer")
		return ctrl.Result{RequeueAfter: 15 * time.Second}, err
	}

	return r.reconcileStack(ctx, stack)
}

func (r *PulumiStackReconciler) handleUpdate(ctx context.Context, stack *pulumiv1.PulumiStack) (ctrl.Result, error) {
	return r.reconcileStack(ctx, stack)
}

func (r *PulumiStackReconciler) reconcileStack(ctx context.Context, stack *pulumiv1.PulumiStack) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if err := r.Service.UpdateStack(ctx, stack); err != nil {
		r.recordEvent(stack, "Warning", "UpdateFailed", "stack update failed: %v", err)
		meta.SetStatusCondition(&stack.Status.Conditions, metav1.Condition{
			Type:    "Ready",
			Status:  metav1.ConditionFalse,
			Reason:  "UpdateFailed",
			Message: err.Error(),
		})
		_ = r.Status().Update(ctx, stack)
		logger.Error(err, "stack update failed")
		return ctrl.Result{RequeueAfter: 15 * time.Second}, err
	}

	stack.Status.ObservedGeneration = stack.Generation
	now := metav1.Now()
	stack.Status.LastReconcileTime = &now
	meta.SetStatusCondition(&stack.Status.Conditions, metav1.Condition{
		Type:    "Ready",
		Status:  metav1.ConditionTrue,
		Reason:  "UpdateSucceeded",
		Message: "stack workload materialized",
	})
	if err := r.Status().Update(ctx, stack); err != nil {
		return ctrl.Result{RequeueAfter: 15 * time.Second}, err
	}

	r.recordEvent(stack, "Normal", "UpdateSucceeded", "stack workload materialized")
	return ctrl.Result{}, nil
}

func (r *PulumiStackReconciler) handleDeletion(ctx context.Context, stack *pulumiv1.PulumiStack) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	if err := r.Service.CancelStack(ctx, stack); err != nil {
		r.recordEvent(stack, "Warning", "DeleteFailed", "stack cancel failed: %v", err)
		meta.SetStatusCondition(&stack.Status.Conditions, metav1.Condition{
			Type:    "DeleteFailed",
			Status:  metav1.ConditionTrue,
			Reason:  "CancelFailed",
			Message: err.Error(),
		})
		_ = r.Status().Update(ctx, stack)
		logger.Error(err, "stack cancel failed")
		return ctrl.Result{RequeueAfter: 15 * time.Second}, err
	}

	if err := r.Gateway.RemoveFinalizer(ctx, stack, pulumiv1.Finalizer); err != nil {
		logger.Error(err, "failed to remove finalizer")
		return ctrl.Result{RequeueAfter: 15 * time.Second}, err
	}

	r.recordEvent(stack, "Normal", "DeleteSucceeded", "stack workload cancelled")
	return ctrl.Result{}, nil
}

// SetupWithManager registers the reconciler. There are no Owns(...) edges:
// the materialized CronJob lives in the operator's namespace, not the
// stack's, so controller-runtime's owner-reference-based child watch
// doesn't apply (see SPEC_FULL.md §4.4). controller-runtime ignores
// RequeueAfter when Reconcile also returns an error and requeues through
// the work queue's rate limiter instead; that limiter's base and maximum
// delay are both 15s, so a failed reconcile is retried after a fixed 15s.
func (r *PulumiStackReconciler) SetupWithManager(mgr ctrl.Manager) error {
	r.Recorder = mgr.GetEventRecorderFor("pulumistack-controller")
	return ctrl.NewControllerManagedBy(mgr).
		For(&pulumiv1.PulumiStack{}).
		WithOptions(crcontroller.Options{
			RateLimiter: workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](15*time.Second, 15*time.Second),
		}).
		Complete(r)
}

// recordEvent safely emits a Kubernetes Event on the CR. It is a no-op when
// the Recorder has not been initialised (e.g. in unit tests that don't use
// a full manager).
func (r *PulumiStackReconciler) recordEvent(stack *pulumiv1.PulumiStack, eventType, reason, messageFmt string, args ...interface{}) {
	if r.Recorder != nil {
		r.Recorder.Eventf(stack, eventType, reason, messageFmt, args...)
	}
}
